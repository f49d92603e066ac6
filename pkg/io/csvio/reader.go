package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
	iox "github.com/wdm0006/dataprepkit/pkg/io/ioutils"
)

var (
	// ErrNoHeader is returned for input without a header row.
	ErrNoHeader = errors.New("csv: no header row")
	// ErrLongRecord is returned for a record with more fields than the header.
	ErrLongRecord = errors.New("csv: record longer than header")
)

type ReaderOptions struct {
	Delimiter rune // default ','
	Strict    bool // if true, short records are an error too
}

type Reader struct {
	r   *csv.Reader
	opt ReaderOptions
	// short records padded with absent cells
	shortRecords int
}

// NewReaderFrom constructs a Reader from an arbitrary io.Reader (stdin, pipe).
func NewReaderFrom(r io.Reader, opt ReaderOptions) *Reader {
	rr := csv.NewReader(r)
	if opt.Delimiter != 0 {
		rr.Comma = opt.Delimiter
	}
	rr.FieldsPerRecord = -1
	return &Reader{r: rr, opt: opt}
}

// ReadFile loads a whole CSV file (or stdin for "-") into a Frame.
func ReadFile(path string, opt ReaderOptions) (*j.Frame, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return NewReaderFrom(rc, opt).ReadAll()
}

// ReadAll reads the header and every record, inferring one kind per column.
func (r *Reader) ReadAll() (*j.Frame, error) {
	hdr, err := r.r.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	names := make([]string, len(hdr))
	for i := range hdr {
		names[i] = strings.ToValidUTF8(hdr[i], "?")
	}
	// strip BOM on first header cell if present
	if len(names) > 0 {
		names[0] = strings.TrimPrefix(names[0], "\ufeff")
	}

	var records [][]string
	for line := 2; ; line++ {
		rec, err := r.r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < len(names) {
			r.shortRecords++
			if r.opt.Strict {
				return nil, fmt.Errorf("csv short record at line %d: need %d fields, got %d", line, len(names), len(rec))
			}
		}
		if len(rec) > len(names) {
			return nil, fmt.Errorf("%w at line %d: need %d fields, got %d", ErrLongRecord, line, len(names), len(rec))
		}
		for i := range rec {
			rec[i] = strings.ToValidUTF8(rec[i], "?")
		}
		records = append(records, rec)
	}
	return j.FrameFromRecords(names, records)
}

// Warnings returns a summary of the repairs made while reading, empty when
// the input was regular.
func (r *Reader) Warnings() string {
	if r.shortRecords == 0 {
		return ""
	}
	return fmt.Sprintf("short_records=%d", r.shortRecords)
}

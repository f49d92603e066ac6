package kit

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/wdm0006/dataprepkit/pkg/dataset"
	"github.com/wdm0006/dataprepkit/pkg/io/csvio"
	iox "github.com/wdm0006/dataprepkit/pkg/io/ioutils"
	"github.com/wdm0006/dataprepkit/pkg/io/jsonio"
	"github.com/wdm0006/dataprepkit/pkg/io/xlsxio"
)

// Format is a file format selector.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLS  Format = "xls"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// DefaultFormat is used by Export for an empty selector.
const DefaultFormat = FormatCSV

// Formats lists the supported selectors.
var Formats = []Format{FormatCSV, FormatXLS, FormatXLSX, FormatJSON}

// ParseFormat validates a selector for op. Matching is exact.
func ParseFormat(op, s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", &UnsupportedFormatError{Op: op, Format: s}
}

// FormatOf derives the format of path from its extension, dot stripped and
// case as given.
func FormatOf(path string) (Format, error) {
	return ParseFormat("load", strings.TrimPrefix(filepath.Ext(path), "."))
}

// OutputName is the fixed file name Export uses for format.
func OutputName(f Format) string {
	switch f {
	case FormatXLS, FormatXLSX:
		return "output.xlsx"
	case FormatJSON:
		return "output.json"
	default:
		return "output.csv"
	}
}

// Load reads path into a frame, choosing the reader by extension. Reader
// errors are returned as is; repaired CSV records are reported on log.
func Load(path string, csvOpt csvio.ReaderOptions, log *slog.Logger) (*dataset.Frame, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatXLS, FormatXLSX:
		return xlsxio.ReadFile(path)
	case FormatJSON:
		return jsonio.ReadFile(path)
	default:
		return loadCSV(path, csvOpt, log)
	}
}

func loadCSV(path string, opt csvio.ReaderOptions, log *slog.Logger) (*dataset.Frame, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	r := csvio.NewReaderFrom(rc, opt)
	f, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if w := r.Warnings(); w != "" && log != nil {
		log.Warn("csv records repaired", "path", path, "repairs", w)
	}
	return f, nil
}

func (k *Kit) write(format Format, path string) error {
	switch format {
	case FormatXLS, FormatXLSX:
		return xlsxio.WriteFile(path, k.frame)
	case FormatJSON:
		return jsonio.WriteFile(path, k.frame, jsonio.WriterOptions{Indent: k.jsonIndent})
	default:
		return csvio.WriteFile(path, k.frame, csvio.WriterOptions{Delimiter: k.delim})
	}
}

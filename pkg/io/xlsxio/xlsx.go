// Package xlsxio reads and writes Excel workbooks.
package xlsxio

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
	iox "github.com/wdm0006/dataprepkit/pkg/io/ioutils"
)

// SheetName is the sheet written by WriteFile.
const SheetName = "Sheet1"

// ErrNoHeader is returned for a first sheet without any row.
var ErrNoHeader = errors.New("xlsx: no header row")

// ReadFile loads the first sheet of a workbook. The first row is the header;
// cells are read as their formatted text and typed by inference, except that
// numeric cells keep their stored value at full precision.
func ReadFile(path string) (*j.Frame, error) {
	xf, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = xf.Close() }()
	return readFirstSheet(xf)
}

// Read is ReadFile for an in-memory or piped workbook.
func Read(r io.Reader) (*j.Frame, error) {
	xf, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = xf.Close() }()
	return readFirstSheet(xf)
}

func readFirstSheet(xf *excelize.File) (*j.Frame, error) {
	sheets := xf.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx: workbook has no sheets")
	}
	rows, err := xf.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}
	raw, err := xf.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return j.FrameFromRecords(rows[0], withRawNumbers(rows[1:], raw[1:]))
}

// withRawNumbers swaps a formatted cell for its raw value when both read as
// numbers. Formatting rounds to 15 significant digits.
func withRawNumbers(rows, raw [][]string) [][]string {
	for r, row := range rows {
		if r >= len(raw) {
			break
		}
		for c, v := range row {
			if c >= len(raw[r]) || raw[r][c] == v {
				continue
			}
			if isNumber(v) && isNumber(raw[r][c]) {
				row[c] = raw[r][c]
			}
		}
	}
	return rows
}

func isNumber(v string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil
}

// WriteFile writes f to a single-sheet workbook at path ("-" for stdout).
func WriteFile(path string, f *j.Frame) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	if err := Write(out, f); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Write encodes f as an xlsx workbook onto w. Numbers and booleans become
// typed cells, timestamps RFC3339 text; absent cells stay empty.
func Write(w io.Writer, f *j.Frame) error {
	xf := excelize.NewFile()
	defer func() { _ = xf.Close() }()

	names := f.Schema().Names()
	hdr := make([]any, len(names))
	for i, n := range names {
		hdr[i] = n
	}
	if err := xf.SetSheetRow(SheetName, "A1", &hdr); err != nil {
		return err
	}

	cols := f.Columns()
	row := make([]any, len(cols))
	for r := 0; r < f.Rows(); r++ {
		for c, col := range cols {
			row[c] = cellValue(col, r)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := xf.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}
	return xf.Write(w)
}

func cellValue(col j.Column, r int) any {
	if tc, ok := col.(*j.TimeColumn); ok {
		if v, ok := tc.Get(r); ok {
			return iox.FormatTime(v)
		}
		return nil
	}
	return col.Value(r)
}

package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
	iox "github.com/wdm0006/dataprepkit/pkg/io/ioutils"
)

type WriterOptions struct {
	Delimiter rune // default ','
}

// WriteFile writes a Frame to a CSV file (or stdout for "-") with a header row
// and no index column.
func WriteFile(path string, f *j.Frame, opt WriterOptions) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	if err := Write(out, f, opt); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Write encodes f as CSV onto w. Absent cells are empty fields.
func Write(out io.Writer, f *j.Frame, opt WriterOptions) error {
	w := csv.NewWriter(out)
	if opt.Delimiter != 0 {
		w.Comma = opt.Delimiter
	}
	if err := w.Write(f.Schema().Names()); err != nil {
		return err
	}
	cols := f.Columns()
	row := make([]string, len(cols))
	for r := 0; r < f.Rows(); r++ {
		for c, col := range cols {
			row[c] = formatCell(col, r)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatCell(col j.Column, r int) string {
	switch c := col.(type) {
	case *j.FloatColumn:
		if v, ok := c.Get(r); ok {
			return iox.FormatFloat(v)
		}
	case *j.IntColumn:
		if v, ok := c.Get(r); ok {
			return strconv.FormatInt(v, 10)
		}
	case *j.BoolColumn:
		if v, ok := c.Get(r); ok {
			return strconv.FormatBool(v)
		}
	case *j.StringColumn:
		if v, ok := c.Get(r); ok {
			return v
		}
	case *j.TimeColumn:
		if v, ok := c.Get(r); ok {
			return iox.FormatTime(v)
		}
	}
	return ""
}

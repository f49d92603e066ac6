package jsonio

import (
	"bytes"
	"encoding/json"
	"io"
	"math"

	"github.com/tidwall/pretty"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
	iox "github.com/wdm0006/dataprepkit/pkg/io/ioutils"
)

type WriterOptions struct {
	Indent bool
}

// WriteFile writes f as an array of records to path ("-" for stdout).
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

// Write encodes f as an array of records with keys in column order. Absent
// cells are null.
func Write(w io.Writer, f *j.Frame, opt WriterOptions) error {
	b, err := Marshal(f)
	if err != nil {
		return err
	}
	if opt.Indent {
		b = pretty.Pretty(b)
	} else {
		b = append(b, '\n')
	}
	_, err = w.Write(b)
	return err
}

// Marshal returns the compact records document for f.
func Marshal(f *j.Frame) ([]byte, error) {
	cols := f.Columns()
	keys := make([][]byte, len(cols))
	for i, c := range cols {
		k, err := json.Marshal(c.Name())
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for r := 0; r < f.Rows(); r++ {
		if r > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for i, c := range cols {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(keys[i])
			buf.WriteByte(':')
			v, err := cellJSON(c, r)
			if err != nil {
				return nil, err
			}
			buf.Write(v)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

var null = []byte("null")

func cellJSON(col j.Column, r int) ([]byte, error) {
	switch c := col.(type) {
	case *j.FloatColumn:
		v, ok := c.Get(r)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			return null, nil
		}
		return json.Marshal(v)
	case *j.TimeColumn:
		v, ok := c.Get(r)
		if !ok {
			return null, nil
		}
		return json.Marshal(iox.FormatTime(v))
	}
	v := col.Value(r)
	if v == nil {
		return null, nil
	}
	return json.Marshal(v)
}

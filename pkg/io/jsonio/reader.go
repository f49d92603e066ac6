// Package jsonio reads and writes tabular JSON documents.
package jsonio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
	iox "github.com/wdm0006/dataprepkit/pkg/io/ioutils"
)

// ErrInvalid is returned for input that is not JSON.
var ErrInvalid = errors.New("json: invalid document")

// ErrLayout is returned for documents that are valid JSON but not a table.
var ErrLayout = errors.New("json: unsupported document layout")

// ReadFile loads a JSON table from path ("-" for stdin).
func ReadFile(path string) (*j.Frame, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Read(rc)
}

// Read decodes one of three layouts:
//
//	[{"a":1,"b":"x"}, ...]          records
//	{"a":{"0":1,"1":2}, ...}        columns keyed by row label
//	{"a":1}\n{"a":2}\n              JSON lines
//
// Column order is first-seen key order. Missing keys and null are absent.
func Read(r io.Reader) (*j.Frame, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var t table
	switch {
	case gjson.ValidBytes(b):
		root := gjson.ParseBytes(b)
		switch {
		case root.IsArray():
			err = t.fromRecords(root)
		case root.IsObject():
			err = t.fromColumns(root)
		default:
			err = fmt.Errorf("%w: top level is %s", ErrLayout, root.Type)
		}
	default:
		err = t.fromLines(string(b))
	}
	if err != nil {
		return nil, err
	}
	return t.frame()
}

// table collects cells by column before kinds are known.
type table struct {
	names []string
	cells map[string][]gjson.Result
	rows  int
}

func (t *table) column(name string) []gjson.Result {
	if t.cells == nil {
		t.cells = map[string][]gjson.Result{}
	}
	c, ok := t.cells[name]
	if !ok {
		t.names = append(t.names, name)
		c = make([]gjson.Result, t.rows)
	}
	return c
}

// addRecord appends one row from an object.
func (t *table) addRecord(rec gjson.Result) error {
	if !rec.IsObject() {
		return fmt.Errorf("%w: record %d is %s, want object", ErrLayout, t.rows, rec.Type)
	}
	t.rows++
	for _, n := range t.names {
		t.cells[n] = append(t.cells[n], gjson.Result{})
	}
	rec.ForEach(func(k, v gjson.Result) bool {
		c := t.column(k.String())
		c[t.rows-1] = v
		t.cells[k.String()] = c
		return true
	})
	return nil
}

func (t *table) fromRecords(root gjson.Result) error {
	var err error
	root.ForEach(func(_, rec gjson.Result) bool {
		err = t.addRecord(rec)
		return err == nil
	})
	return err
}

func (t *table) fromLines(doc string) error {
	var err error
	gjson.ForEachLine(doc, func(line gjson.Result) bool {
		if !gjson.Valid(line.Raw) {
			err = ErrInvalid
			return false
		}
		err = t.addRecord(line)
		return err == nil
	})
	if err == nil && t.rows == 0 {
		if strings.TrimSpace(doc) == "" {
			return errors.New("json: empty document")
		}
		return ErrInvalid
	}
	return err
}

func (t *table) fromColumns(root gjson.Result) error {
	labels := map[string]int{}
	var order []string
	var err error
	root.ForEach(func(k, col gjson.Result) bool {
		if !col.IsObject() {
			err = fmt.Errorf("%w: column %q is %s, want object", ErrLayout, k.String(), col.Type)
			return false
		}
		col.ForEach(func(label, _ gjson.Result) bool {
			if _, ok := labels[label.String()]; !ok {
				labels[label.String()] = len(order)
				order = append(order, label.String())
			}
			return true
		})
		return true
	})
	if err != nil {
		return err
	}
	t.rows = len(order)
	root.ForEach(func(k, col gjson.Result) bool {
		c := t.column(k.String())
		col.ForEach(func(label, v gjson.Result) bool {
			c[labels[label.String()]] = v
			return true
		})
		t.cells[k.String()] = c
		return true
	})
	return nil
}

func (t *table) frame() (*j.Frame, error) {
	cols := make([]j.Column, len(t.names))
	for i, name := range t.names {
		vals := t.cells[name]
		kind := kindOf(vals)
		col, err := j.NewColumn(name, kind, t.rows)
		if err != nil {
			return nil, err
		}
		for r, v := range vals {
			set(col, r, v)
		}
		cols[i] = col
	}
	f, err := j.NewFrameFromColumns(cols...)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		for r := 0; r < t.rows; r++ {
			f.AppendNullRow()
		}
	}
	return f, nil
}

func absent(v gjson.Result) bool { return v.Type == gjson.Null }

func isInteger(v gjson.Result) bool {
	return v.Type == gjson.Number && !strings.ContainsAny(v.Raw, ".eE")
}

// kindOf follows the JSON types: booleans, numbers (integers widen to float
// when any cell is absent) and strings. Mixed or nested columns are strings.
func kindOf(vals []gjson.Result) j.Kind {
	var n, nums, ints, bools, strs int
	missing := false
	for _, v := range vals {
		switch {
		case absent(v):
			missing = true
			continue
		case v.Type == gjson.Number:
			nums++
			if isInteger(v) {
				ints++
			}
		case v.Type == gjson.True || v.Type == gjson.False:
			bools++
		case v.Type == gjson.String:
			strs++
		}
		n++
	}
	switch {
	case n == 0:
		return j.KindFloat
	case ints == n && !missing:
		return j.KindInt
	case nums == n:
		return j.KindFloat
	case bools == n:
		return j.KindBool
	default:
		return j.KindString
	}
}

func set(col j.Column, r int, v gjson.Result) {
	if absent(v) {
		return
	}
	switch c := col.(type) {
	case *j.IntColumn:
		c.Set(r, v.Int())
	case *j.FloatColumn:
		c.Set(r, v.Float())
	case *j.BoolColumn:
		c.Set(r, v.Bool())
	case *j.StringColumn:
		if v.Type == gjson.String {
			c.Set(r, v.Str)
		} else {
			c.Set(r, v.Raw)
		}
	}
}

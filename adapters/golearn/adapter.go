// Package golearn converts frames to and from golearn's DenseInstances so a
// prepared table can be handed straight to a golearn model.
package golearn

import (
	"fmt"
	"math"

	"github.com/sjwhitworth/golearn/base"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
)

// ToDenseInstances converts a Frame into golearn DenseInstances. Numeric
// columns become float attributes (absent cells are NaN), every other kind a
// categorical attribute over the cell text (absent cells are ""). The last
// column is the class attribute.
func ToDenseInstances(f *j.Frame) (*base.DenseInstances, error) {
	cols := f.Columns()
	attrs := make([]base.Attribute, len(cols))
	for i, c := range cols {
		if c.Kind().IsNumeric() {
			attrs[i] = base.NewFloatAttribute(c.Name())
			continue
		}
		ca := new(base.CategoricalAttribute)
		ca.SetName(c.Name())
		attrs[i] = ca
	}
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(f.Rows()); err != nil {
		return nil, err
	}

	for r := 0; r < f.Rows(); r++ {
		for c, col := range cols {
			inst.Set(specs[c], r, sysVal(attrs[c], col, r))
		}
	}
	if len(attrs) > 0 {
		if err := inst.AddClassAttribute(attrs[len(attrs)-1]); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

func sysVal(a base.Attribute, col j.Column, r int) []byte {
	v := col.Value(r)
	switch x := v.(type) {
	case float64:
		return base.PackFloatToBytes(x)
	case int64:
		return base.PackFloatToBytes(float64(x))
	case nil:
		if col.Kind().IsNumeric() {
			return base.PackFloatToBytes(math.NaN())
		}
		return a.GetSysValFromString("")
	default:
		return a.GetSysValFromString(fmt.Sprint(x))
	}
}

// FromDenseInstances converts golearn DenseInstances into a Frame. Float
// attributes become float columns with NaN read back as absent; all other
// attributes become string columns.
func FromDenseInstances(inst *base.DenseInstances) (*j.Frame, error) {
	attrs := inst.AllAttributes()
	schema := j.Schema{Columns: make([]j.ColumnSchema, len(attrs))}
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		k := j.KindString
		if a.GetType() == base.Float64Type {
			k = j.KindFloat
		}
		schema.Columns[i] = j.ColumnSchema{Name: a.GetName(), Type: k, Nullable: true}
		spec, err := inst.GetAttribute(a)
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}
	f := j.NewFrame(schema)
	_, nrows := inst.Size()
	for r := 0; r < nrows; r++ {
		f.AppendNullRow()
		for c, cs := range schema.Columns {
			var v any
			raw := inst.Get(specs[c], r)
			if cs.Type == j.KindFloat {
				if x := base.UnpackBytesToFloat(raw); !math.IsNaN(x) {
					v = x
				}
			} else {
				v = specs[c].GetAttribute().GetStringFromSysVal(raw)
			}
			if err := f.SetCell(r, cs.Name, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

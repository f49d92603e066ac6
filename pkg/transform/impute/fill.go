package impute

import (
	"context"
	"time"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
)

// ForwardFill propagates the last valid value forward. Leading nulls have
// nothing to copy and stay null.
type ForwardFill struct{ Column string }

func (t *ForwardFill) Name() string { return "impute_ffill" }

func (t *ForwardFill) Apply(ctx context.Context, f *j.Frame) (*j.Frame, error) {
	return propagate(ctx, f, t.Column, false)
}

// BackwardFill propagates the next valid value backward. Trailing nulls stay
// null.
type BackwardFill struct{ Column string }

func (t *BackwardFill) Name() string { return "impute_bfill" }

func (t *BackwardFill) Apply(ctx context.Context, f *j.Frame) (*j.Frame, error) {
	return propagate(ctx, f, t.Column, true)
}

func propagate(ctx context.Context, f *j.Frame, column string, backward bool) (*j.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	col, ok := f.ColumnByName(column)
	if !ok {
		return f, nil
	}
	switch c := col.(type) {
	case *j.FloatColumn:
		carry[float64](c, backward)
	case *j.IntColumn:
		carry[int64](c, backward)
	case *j.StringColumn:
		carry[string](c, backward)
	case *j.BoolColumn:
		carry[bool](c, backward)
	case *j.TimeColumn:
		carry[time.Time](c, backward)
	}
	return f, nil
}

func carry[T any](c valueColumn[T], backward bool) {
	n := c.Len()
	var last T
	have := false
	for k := 0; k < n; k++ {
		i := k
		if backward {
			i = n - 1 - k
		}
		if v, ok := c.Get(i); ok {
			last, have = v, true
			continue
		}
		if have {
			c.Set(i, last)
		}
	}
}

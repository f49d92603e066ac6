package impute

import (
	"cmp"
	"context"
	"time"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
)

// Mode fills nulls with the most frequent value of the column. Ties go to the
// smallest value so the result does not depend on row order.
type Mode struct{ Column string }

func (t *Mode) Name() string { return "impute_mode" }

func (t *Mode) Apply(ctx context.Context, f *j.Frame) (*j.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	switch c := col.(type) {
	case *j.FloatColumn:
		if v, ok := mode(present[float64](c), identity[float64], cmp.Less[float64]); ok {
			fillNulls[float64](c, v)
		}
	case *j.IntColumn:
		if v, ok := mode(present[int64](c), identity[int64], cmp.Less[int64]); ok {
			fillNulls[int64](c, v)
		}
	case *j.StringColumn:
		if v, ok := mode(present[string](c), identity[string], cmp.Less[string]); ok {
			fillNulls[string](c, v)
		}
	case *j.BoolColumn:
		if v, ok := mode(present[bool](c), identity[bool], func(a, b bool) bool { return !a && b }); ok {
			fillNulls[bool](c, v)
		}
	case *j.TimeColumn:
		if v, ok := mode(present[time.Time](c), func(t time.Time) int64 { return t.UnixNano() }, time.Time.Before); ok {
			fillNulls[time.Time](c, v)
		}
	}
	return f, nil
}

func identity[T any](v T) T { return v }

// mode returns the most frequent value; ok is false for empty input.
func mode[T any, K comparable](vals []T, key func(T) K, less func(a, b T) bool) (best T, ok bool) {
	counts := make(map[K]int, len(vals))
	bestc := 0
	for _, v := range vals {
		k := key(v)
		counts[k]++
		n := counts[k]
		if n > bestc || (n == bestc && less(v, best)) {
			best, bestc = v, n
		}
	}
	return best, bestc > 0
}

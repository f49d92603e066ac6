package impute

import (
	"context"
	"math"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
)

// Mean fills nulls of a numeric column with the column mean. Other kinds
// are left untouched.
type Mean struct{ Column string }

func (t *Mean) Name() string { return "impute_mean" }

func (t *Mean) Apply(ctx context.Context, f *j.Frame) (*j.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	switch c := col.(type) {
	case *j.FloatColumn:
		var sum float64
		var n int
		for _, v := range present[float64](c) {
			sum += v
			n++
		}
		if n == 0 {
			return f, nil
		}
		fillNulls[float64](c, sum/float64(n))
	case *j.IntColumn:
		var sum int64
		var n int
		for _, v := range present[int64](c) {
			sum += v
			n++
		}
		if n == 0 {
			return f, nil
		}
		mean := float64(sum) / float64(n)
		// round to nearest
		fillNulls[int64](c, int64(math.Round(mean)))
	}
	return f, nil
}

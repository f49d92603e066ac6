package impute

import (
	"context"
	"math"

	"github.com/montanaflynn/stats"
	j "github.com/wdm0006/dataprepkit/pkg/dataset"
)

// Median fills nulls of a numeric column with the column median.
type Median struct{ Column string }

func (t *Median) Name() string { return "impute_median" }

func (t *Median) Apply(ctx context.Context, f *j.Frame) (*j.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	switch c := col.(type) {
	case *j.FloatColumn:
		vals := present[float64](c)
		if len(vals) == 0 {
			return f, nil
		}
		med, err := stats.Median(vals)
		if err != nil {
			return nil, err
		}
		fillNulls[float64](c, med)
	case *j.IntColumn:
		ints := present[int64](c)
		if len(ints) == 0 {
			return f, nil
		}
		vals := make([]float64, len(ints))
		for i, v := range ints {
			vals[i] = float64(v)
		}
		med, err := stats.Median(vals)
		if err != nil {
			return nil, err
		}
		fillNulls[int64](c, int64(math.Round(med)))
	}
	return f, nil
}

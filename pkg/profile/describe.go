// Package profile computes descriptive statistics over a frame.
package profile

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
)

// Layout says which family of statistics a Summary holds.
type Layout string

const (
	LayoutNumeric     Layout = "numeric"
	LayoutCategorical Layout = "categorical"
	LayoutEmpty       Layout = "empty"
)

// Statistic row labels, in display order.
var (
	NumericStats     = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}
	CategoricalStats = []string{"count", "unique", "top", "freq"}
)

var quartiles = []float64{25, 50, 75}

// Stat is a float that encodes NaN as JSON null.
type Stat float64

func (s Stat) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(s))
}

func (s Stat) String() string {
	if math.IsNaN(float64(s)) {
		return "NaN"
	}
	return strconv.FormatFloat(float64(s), 'f', 6, 64)
}

// NumericSummary describes one numeric column. Nulls are excluded.
type NumericSummary struct {
	Count int  `json:"count"`
	Mean  Stat `json:"mean"`
	Std   Stat `json:"std"`
	Min   Stat `json:"min"`
	Q25   Stat `json:"25%"`
	Q50   Stat `json:"50%"`
	Q75   Stat `json:"75%"`
	Max   Stat `json:"max"`
}

// CategoricalSummary describes one string or bool column.
type CategoricalSummary struct {
	Count  int    `json:"count"`
	Unique int    `json:"unique"`
	Top    string `json:"top,omitempty"`
	Freq   int    `json:"freq"`
}

type ColumnSummary struct {
	Name        string              `json:"name"`
	Kind        string              `json:"kind"`
	Nulls       int                 `json:"nulls"`
	Numeric     *NumericSummary     `json:"numeric,omitempty"`
	Categorical *CategoricalSummary `json:"categorical,omitempty"`
}

// Summary is the describe table of a frame: one entry per described column.
type Summary struct {
	Layout  Layout          `json:"layout"`
	Rows    int             `json:"rows"`
	Columns []ColumnSummary `json:"columns"`
}

// Empty reports whether no column could be described.
func (s *Summary) Empty() bool { return len(s.Columns) == 0 }

// Describe summarizes the numeric columns of f. Frames without numeric
// columns fall back to count/unique/top/freq over their string and bool
// columns. Time columns are never described.
func Describe(f *j.Frame) *Summary {
	s := &Summary{Layout: LayoutEmpty, Rows: f.Rows()}
	for _, col := range f.Columns() {
		if !col.Kind().IsNumeric() {
			continue
		}
		s.Columns = append(s.Columns, ColumnSummary{
			Name:    col.Name(),
			Kind:    col.Kind().String(),
			Nulls:   nulls(col),
			Numeric: describeNumeric(col),
		})
	}
	if len(s.Columns) > 0 {
		s.Layout = LayoutNumeric
		return s
	}
	for _, col := range f.Columns() {
		if col.Kind() != j.KindString && col.Kind() != j.KindBool {
			continue
		}
		s.Columns = append(s.Columns, ColumnSummary{
			Name:        col.Name(),
			Kind:        col.Kind().String(),
			Nulls:       nulls(col),
			Categorical: describeCategorical(col),
		})
	}
	if len(s.Columns) > 0 {
		s.Layout = LayoutCategorical
	}
	return s
}

func nulls(c j.Column) int {
	n := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			n++
		}
	}
	return n
}

// Values returns the non-null cells of a numeric column as floats.
func Values(c j.Column) stats.Float64Data {
	out := make(stats.Float64Data, 0, c.Len())
	switch col := c.(type) {
	case *j.FloatColumn:
		for i := 0; i < col.Len(); i++ {
			if v, ok := col.Get(i); ok && !math.IsNaN(v) {
				out = append(out, v)
			}
		}
	case *j.IntColumn:
		for i := 0; i < col.Len(); i++ {
			if v, ok := col.Get(i); ok {
				out = append(out, float64(v))
			}
		}
	}
	return out
}

func describeNumeric(c j.Column) *NumericSummary {
	data := Values(c)
	// allowNaN keeps an empty column describable
	d, _ := stats.DescribePercentileFunc(data, true, &quartiles, LinearPercentile)
	std, _ := stats.StandardDeviationSample(data)
	ns := &NumericSummary{
		Count: d.Count,
		Mean:  Stat(d.Mean),
		Std:   Stat(std),
		Min:   Stat(d.Min),
		Max:   Stat(d.Max),
		Q25:   Stat(math.NaN()),
		Q50:   Stat(math.NaN()),
		Q75:   Stat(math.NaN()),
	}
	for _, p := range d.DescriptionPercentiles {
		switch p.Percentile {
		case 25:
			ns.Q25 = Stat(p.Value)
		case 50:
			ns.Q50 = Stat(p.Value)
		case 75:
			ns.Q75 = Stat(p.Value)
		}
	}
	return ns
}

func describeCategorical(c j.Column) *CategoricalSummary {
	counts := ValueCounts(c)
	cs := &CategoricalSummary{Unique: len(counts)}
	for _, vc := range counts {
		cs.Count += vc.Count
	}
	if len(counts) > 0 {
		cs.Top, cs.Freq = counts[0].Value, counts[0].Count
	}
	return cs
}

// ValueCount is one distinct value and how often it occurs.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts tallies the non-null cells of a string or bool column, most
// frequent first. Ties keep first-appearance order.
func ValueCounts(c j.Column) []ValueCount {
	pos := map[string]int{}
	var out []ValueCount
	for i := 0; i < c.Len(); i++ {
		v := c.Value(i)
		if v == nil {
			continue
		}
		var key string
		switch x := v.(type) {
		case string:
			key = x
		case bool:
			key = strconv.FormatBool(x)
		default:
			continue
		}
		if k, ok := pos[key]; ok {
			out[k].Count++
			continue
		}
		pos[key] = len(out)
		out = append(out, ValueCount{Value: key, Count: 1})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })
	return out
}

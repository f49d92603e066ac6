// Package chart renders per-column distribution charts as PNG files.
package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
	"github.com/wdm0006/dataprepkit/pkg/profile"
)

// DefaultDir is where charts go when Options.Dir is empty.
const DefaultDir = "charts"

// Bins is the histogram bin count.
const Bins = 10

type Options struct {
	Dir    string
	Width  vg.Length // default 6in
	Height vg.Length // default 4in
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	if o.Width == 0 {
		o.Width = 6 * vg.Inch
	}
	if o.Height == 0 {
		o.Height = 4 * vg.Inch
	}
	return o
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName returns the chart file name for the column at index.
func FileName(index int, column string) string {
	name := unsafeChars.ReplaceAllString(column, "_")
	if name == "" {
		name = "column"
	}
	return strconv.Itoa(index) + "_" + name + ".png"
}

// Render writes a histogram for every numeric column and a bar chart of value
// counts for every string column. Other kinds and columns without values are
// skipped. It returns the written paths in column order.
func Render(f *j.Frame, opt Options) ([]string, error) {
	opt = opt.withDefaults()
	var paths []string
	for i, col := range f.Columns() {
		var p *plot.Plot
		var err error
		switch c := col.(type) {
		case *j.FloatColumn, *j.IntColumn:
			p, err = Histogram(c)
		case *j.StringColumn:
			p, err = BarChart(c)
		default:
			continue
		}
		if err != nil {
			return paths, fmt.Errorf("chart %s: %w", col.Name(), err)
		}
		if p == nil {
			continue
		}
		if len(paths) == 0 {
			if err := os.MkdirAll(opt.Dir, 0o755); err != nil {
				return nil, err
			}
		}
		path := filepath.Join(opt.Dir, FileName(i, col.Name()))
		if err := p.Save(opt.Width, opt.Height, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Histogram plots the distribution of a numeric column in Bins bins. It
// returns nil when the column has no values.
func Histogram(c j.Column) (*plot.Plot, error) {
	data := profile.Values(c)
	if len(data) == 0 {
		return nil, nil
	}
	vals := make(plotter.Values, len(data))
	copy(vals, data)
	h, err := plotter.NewHist(vals, Bins)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = c.Name()
	p.X.Label.Text = c.Name()
	p.Y.Label.Text = "count"
	p.Add(h)
	return p, nil
}

// BarChart plots value counts of a string column, most frequent first. It
// returns nil when the column has no values.
func BarChart(c *j.StringColumn) (*plot.Plot, error) {
	counts := profile.ValueCounts(c)
	if len(counts) == 0 {
		return nil, nil
	}
	vals := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, vc := range counts {
		vals[i] = float64(vc.Count)
		labels[i] = vc.Value
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = c.Name()
	p.Y.Label.Text = "count"
	p.Add(bars)
	p.NominalX(labels...)
	return p, nil
}

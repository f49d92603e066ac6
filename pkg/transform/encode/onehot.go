// Package encode turns categorical columns into numeric indicator columns.
package encode

import (
	"context"
	"fmt"
	"sort"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
)

// OneHot replaces every string column with one 0/1 integer column per distinct
// non-null value, named "<column>_<value>". Categories are sorted; indicator
// columns are appended after the untouched columns in source-column order.
// Null source cells are 0 in every indicator; a column with no values at all
// is dropped without indicators.
type OneHot struct {
	// Columns limits encoding to the named string columns. Empty means all.
	Columns []string
}

func (t *OneHot) Name() string { return "encode_onehot" }

func (t *OneHot) Apply(ctx context.Context, f *j.Frame) (*j.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		want[c] = true
	}

	var kept, indicators []j.Column
	encoded := 0
	for _, col := range f.Columns() {
		sc, ok := col.(*j.StringColumn)
		if !ok || (len(want) > 0 && !want[col.Name()]) {
			kept = append(kept, col)
			continue
		}
		encoded++
		indicators = append(indicators, Indicators(sc)...)
	}
	if encoded == 0 {
		return f, nil
	}

	seen := make(map[string]bool, len(kept)+len(indicators))
	for _, c := range append(append([]j.Column{}, kept...), indicators...) {
		if seen[c.Name()] {
			return nil, fmt.Errorf("one-hot encoding: column name collision on %q", c.Name())
		}
		seen[c.Name()] = true
	}
	if err := f.SetColumns(append(kept, indicators...)); err != nil {
		return nil, err
	}
	return f, nil
}

// Categories returns the distinct non-null values of c in sorted order.
func Categories(c *j.StringColumn) []string {
	set := map[string]struct{}{}
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Get(i); ok {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Indicators builds the indicator columns for c without touching any frame.
func Indicators(c *j.StringColumn) []j.Column {
	cats := Categories(c)
	pos := make(map[string]int, len(cats))
	cols := make([]*j.IntColumn, len(cats))
	for k, v := range cats {
		pos[v] = k
		cols[k] = j.NewIntColumn(c.Name()+"_"+v, c.Len())
	}
	for i := 0; i < c.Len(); i++ {
		v, ok := c.Get(i)
		for k, ic := range cols {
			if ok && pos[v] == k {
				ic.Set(i, 1)
			} else {
				ic.Set(i, 0)
			}
		}
	}
	out := make([]j.Column, len(cols))
	for k, ic := range cols {
		out[k] = ic
	}
	return out
}

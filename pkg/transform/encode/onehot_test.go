package encode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	j "github.com/wdm0006/dataprepkit/pkg/dataset"
)

func TestOneHotLayout(t *testing.T) {
	f, err := j.FrameFromRecords(
		[]string{"city", "age", "tier"},
		[][]string{{"NY", "25", "b"}, {"LA", "30", "a"}, {"", "35", "b"}},
	)
	require.NoError(t, err)

	out, err := (&OneHot{}).Apply(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "city_LA", "city_NY", "tier_a", "tier_b"}, out.Schema().Names())
	assert.Equal(t, 3, out.Rows())

	ny, _ := out.ColumnByName("city_NY")
	la, _ := out.ColumnByName("city_LA")
	for i, want := range [][2]int64{{1, 0}, {0, 1}, {0, 0}} {
		assert.Equal(t, want[0], ny.Value(i), "row %d", i)
		assert.Equal(t, want[1], la.Value(i), "row %d", i)
	}
	assert.Equal(t, j.KindInt, out.Schema().Columns[1].Type)
}

func TestOneHotRowsSumToOne(t *testing.T) {
	f, err := j.FrameFromRecords([]string{"c"}, [][]string{{"x"}, {"y"}, {"z"}, {"x"}})
	require.NoError(t, err)
	out, err := (&OneHot{}).Apply(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, 3, out.Cols())
	for i := 0; i < out.Rows(); i++ {
		var sum int64
		for _, c := range out.Columns() {
			sum += c.Value(i).(int64)
		}
		assert.Equal(t, int64(1), sum)
	}
}

func TestOneHotNoStringColumns(t *testing.T) {
	f, err := j.FrameFromRecords([]string{"a", "b"}, [][]string{{"1", "2.5"}})
	require.NoError(t, err)
	before := f.Schema().Names()
	out, err := (&OneHot{}).Apply(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, before, out.Schema().Names())
}

func TestOneHotCollision(t *testing.T) {
	f, err := j.FrameFromRecords([]string{"c", "c_x"}, [][]string{{"x", "1"}})
	require.NoError(t, err)
	_, err = (&OneHot{}).Apply(context.Background(), f)
	require.Error(t, err)
	assert.Equal(t, []string{"c", "c_x"}, f.Schema().Names())
}

func TestOneHotSelectedColumns(t *testing.T) {
	f, err := j.FrameFromRecords([]string{"a", "b"}, [][]string{{"p", "q"}})
	require.NoError(t, err)
	out, err := (&OneHot{Columns: []string{"b"}}).Apply(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b_q"}, out.Schema().Names())
}

func TestOneHotDropsValuelessColumn(t *testing.T) {
	build := func(withCity bool) *j.Frame {
		n := j.NewIntColumn("n", 2)
		n.Set(0, 1)
		n.Set(1, 2)
		note := j.NewStringColumn("note", 2)
		note.SetNull(0)
		note.SetNull(1)
		cols := []j.Column{n, note}
		if withCity {
			city := j.NewStringColumn("city", 2)
			city.Set(0, "LA")
			city.Set(1, "NY")
			cols = append(cols, city)
		}
		f, err := j.NewFrameFromColumns(cols...)
		require.NoError(t, err)
		return f
	}

	out, err := (&OneHot{}).Apply(context.Background(), build(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"n"}, out.Schema().Names())

	out, err = (&OneHot{}).Apply(context.Background(), build(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "city_LA", "city_NY"}, out.Schema().Names())
}

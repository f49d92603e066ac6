package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFrame(rows int) *Frame {
	s := Schema{Columns: []ColumnSchema{{Name: "a", Type: KindFloat, Nullable: true}, {Name: "b", Type: KindInt, Nullable: true}, {Name: "s", Type: KindString, Nullable: true}}}
	f := NewFrame(s)
	for i := 0; i < rows; i++ {
		f.AppendNullRow()
		_ = f.SetCell(i, "a", float64(i%100))
		_ = f.SetCell(i, "b", int64(i%10))
		_ = f.SetCell(i, "s", "x")
	}
	return f
}

func TestFrameBasics(t *testing.T) {
	f := makeFrame(3)
	assert.Equal(t, 3, f.Rows())
	assert.Equal(t, 3, f.Cols())
	assert.Equal(t, []string{"a", "b", "s"}, f.Schema().Names())

	require.NoError(t, f.SetCell(1, "a", nil))
	assert.Equal(t, 1, f.NullCount("a"))
	col, ok := f.ColumnByName("a")
	require.True(t, ok)
	assert.Nil(t, col.Value(1))
	assert.Equal(t, 2.0, col.Value(2))

	assert.Error(t, f.SetCell(0, "missing", 1))
	assert.Error(t, f.SetCell(0, "s", 12))
}

func TestReplaceColumn(t *testing.T) {
	f := makeFrame(2)
	x := NewIntColumn("s_x", 2)
	x.Set(0, 1)
	x.Set(1, 1)
	y := NewIntColumn("s_y", 2)
	y.Set(0, 0)
	y.Set(1, 0)

	require.NoError(t, f.ReplaceColumn("s", x, y))
	assert.Equal(t, []string{"a", "b", "s_x", "s_y"}, f.Schema().Names())
	assert.Equal(t, KindInt, f.Schema().Columns[2].Type)
	_, ok := f.ColumnByName("s")
	assert.False(t, ok)

	// duplicate names are rejected and leave the frame untouched
	dup := NewIntColumn("a", 2)
	assert.Error(t, f.ReplaceColumn("s_y", dup))
	assert.Equal(t, []string{"a", "b", "s_x", "s_y"}, f.Schema().Names())

	// length mismatch is rejected
	short := NewIntColumn("z", 1)
	assert.Error(t, f.ReplaceColumn("s_y", short))
}

func TestReplaceLastColumnKeepsRows(t *testing.T) {
	f := NewFrame(Schema{Columns: []ColumnSchema{{Name: "s", Type: KindString}}})
	f.AppendNullRow()
	f.AppendNullRow()
	require.NoError(t, f.ReplaceColumn("s"))
	assert.Equal(t, 0, f.Cols())
	assert.Equal(t, 2, f.Rows())
}

func TestNewColumnAllNull(t *testing.T) {
	c, err := NewColumn("t", KindTime, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.True(t, c.IsNull(i))
	}
	_, err = NewColumn("bad", KindInvalid, 1)
	assert.Error(t, err)
}

func TestInferKind(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want Kind
	}{
		{"ints", []string{"1", "2", "-3"}, KindInt},
		{"ints with gap widen", []string{"1", "", "3"}, KindFloat},
		{"floats", []string{"1.5", "2", "3e2"}, KindFloat},
		{"bools", []string{"true", "False", "TRUE"}, KindBool},
		{"dates stay text", []string{"2024-01-02", "2024-02-03 10:00:00"}, KindString},
		{"mixed", []string{"1", "two", "3"}, KindString},
		{"all missing", []string{"", "NA"}, KindFloat},
		{"text", []string{"Paris", "Rome"}, KindString},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InferKind(tc.in))
		})
	}
}

func TestFrameFromRecords(t *testing.T) {
	f, err := FrameFromRecords(
		[]string{"age", "city", "joined"},
		[][]string{
			{"30", "Paris", "2024-01-02"},
			{"", "Rome", "2024-01-03"},
			{"40", "Paris"},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Rows())
	assert.Equal(t, KindFloat, f.Schema().Columns[0].Type)
	assert.Equal(t, KindString, f.Schema().Columns[1].Type)
	assert.Equal(t, KindString, f.Schema().Columns[2].Type)
	assert.Equal(t, 1, f.NullCount("age"))
	assert.Equal(t, 1, f.NullCount("joined"))

	joined, _ := f.ColumnByName("joined")
	assert.Equal(t, "2024-01-02", joined.Value(0))
}

func TestParseCellTime(t *testing.T) {
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), ParseCell(KindTime, "2024-01-02"))
	assert.Equal(t, time.Date(2024, 1, 2, 10, 0, 0, 123000000, time.UTC), ParseCell(KindTime, "2024-01-02T10:00:00.123Z"))
	assert.Nil(t, ParseCell(KindTime, "soon"))
}

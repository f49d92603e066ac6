package xlsxio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	j "github.com/wdm0006/dataprepkit/pkg/dataset"
	"github.com/wdm0006/dataprepkit/pkg/io/csvio"
)

func TestWriteThenRead(t *testing.T) {
	src, err := csvio.ReadFile(filepath.FromSlash("../../../examples/data/people.csv"), csvio.ReaderOptions{})
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "output.xlsx")
	require.NoError(t, WriteFile(p, src))

	back, err := ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, src.Schema().Names(), back.Schema().Names())
	assert.Equal(t, src.Rows(), back.Rows())
	assert.Equal(t, 1, back.NullCount("age"))

	member, _ := back.ColumnByName("member")
	assert.Equal(t, j.KindBool, member.Kind())
	assert.Equal(t, true, member.Value(0))

	joined, _ := back.ColumnByName("joined")
	assert.Equal(t, j.KindString, joined.Kind())
	assert.Equal(t, "2024-01-02", joined.Value(0))
}

func TestSheetNameAndTypedCells(t *testing.T) {
	src, err := j.FrameFromRecords([]string{"n", "s"}, [][]string{{"1", "a"}, {"2", ""}})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src))

	xf, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = xf.Close() }()
	assert.Equal(t, []string{SheetName}, xf.GetSheetList())
	typ, err := xf.GetCellType(SheetName, "A2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)
	v, err := xf.GetCellValue(SheetName, "B3")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestReadFirstSheetOnly(t *testing.T) {
	xf := excelize.NewFile()
	require.NoError(t, xf.SetSheetRow("Sheet1", "A1", &[]any{"a", "b"}))
	require.NoError(t, xf.SetSheetRow("Sheet1", "A2", &[]any{1.5, "x"}))
	_, err := xf.NewSheet("Other")
	require.NoError(t, err)
	require.NoError(t, xf.SetSheetRow("Other", "A1", &[]any{"zzz"}))
	p := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, xf.SaveAs(p))
	require.NoError(t, xf.Close())

	fr, err := ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, fr.Schema().Names())
	assert.Equal(t, 1.5, fr.Column(0).Value(0))
}

func TestNotAWorkbook(t *testing.T) {
	p := filepath.Join(t.TempDir(), "legacy.xls")
	require.NoError(t, os.WriteFile(p, []byte("not a zip"), 0o644))
	_, err := ReadFile(p)
	assert.Error(t, err)
}

func TestReadKeepsFullPrecision(t *testing.T) {
	src, err := j.FrameFromRecords(
		[]string{"x", "flag", "pct"},
		[][]string{{"0.30000000000000004", "true", "0.5"}, {"1.5", "false", "0.25"}},
	)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src))

	back, err := Read(&buf)
	require.NoError(t, err)
	x, _ := back.ColumnByName("x")
	assert.Equal(t, 0.30000000000000004, x.Value(0))
	assert.Equal(t, 1.5, x.Value(1))
	flag, _ := back.ColumnByName("flag")
	assert.Equal(t, j.KindBool, flag.Kind())
	assert.Equal(t, false, flag.Value(1))
}

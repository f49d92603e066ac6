package csvio

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	j "github.com/wdm0006/dataprepkit/pkg/dataset"
)

func TestInferAndRead(t *testing.T) {
	p := filepath.FromSlash("../../../examples/data/people.csv")
	fr, err := ReadFile(p, ReaderOptions{})
	require.NoError(t, err)
	require.Equal(t, 5, fr.Rows())

	kinds := map[string]j.Kind{}
	for _, cs := range fr.Schema().Columns {
		kinds[cs.Name] = cs.Type
	}
	assert.Equal(t, map[string]j.Kind{
		"name":   j.KindString,
		"age":    j.KindFloat, // an absent cell widens the integers
		"city":   j.KindString,
		"score":  j.KindFloat,
		"member": j.KindBool,
		"joined": j.KindString,
	}, kinds)
	assert.Equal(t, 1, fr.NullCount("age"))
	assert.Equal(t, 1, fr.NullCount("city"))

	joined, _ := fr.ColumnByName("joined")
	assert.Equal(t, "2024-01-02", joined.Value(0))
}

func TestBOMAndDelimiter(t *testing.T) {
	in := "\ufeffa;b\n1;x\n2;y\n"
	fr, err := NewReaderFrom(strings.NewReader(in), ReaderOptions{Delimiter: ';'}).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, fr.Schema().Names())
	assert.Equal(t, j.KindInt, fr.Schema().Columns[0].Type)
}

func TestShortRecords(t *testing.T) {
	in := "a,b,c\n1,2,3\n4\n"
	r := NewReaderFrom(strings.NewReader(in), ReaderOptions{})
	fr, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, 2, fr.Rows())
	assert.Equal(t, 1, fr.NullCount("c"))
	assert.Equal(t, "short_records=1", r.Warnings())

	_, err = NewReaderFrom(strings.NewReader(in), ReaderOptions{Strict: true}).ReadAll()
	assert.Error(t, err)
}

func TestLongRecordFails(t *testing.T) {
	in := "a,b\n1,2\n3,4,99\n"
	_, err := NewReaderFrom(strings.NewReader(in), ReaderOptions{}).ReadAll()
	require.ErrorIs(t, err, ErrLongRecord)
	assert.Contains(t, err.Error(), "line 3")
}

func TestEmptyInput(t *testing.T) {
	_, err := NewReaderFrom(strings.NewReader(""), ReaderOptions{}).ReadAll()
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestHeaderOnly(t *testing.T) {
	fr, err := NewReaderFrom(strings.NewReader("a,b\n"), ReaderOptions{}).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, 0, fr.Rows())
	assert.Equal(t, 2, fr.Cols())
}

func TestGzipSniffed(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte("x,y\n1,2\n"))
	require.NoError(t, zw.Close())
	p := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o644))

	fr, err := ReadFile(p, ReaderOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, fr.Rows())
}

func TestMissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"), ReaderOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

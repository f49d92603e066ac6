package csvio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	j "github.com/wdm0006/dataprepkit/pkg/dataset"
)

func TestWriteRoundTrip(t *testing.T) {
	in := "name,age,member,joined,seen\n" +
		"Alice,30.0,true,2024-01-02,2024-01-02T10:00:00.123Z\n" +
		"Bob,,false,2024-01-03 10:00:00,\n"
	fr, err := NewReaderFrom(strings.NewReader(in), ReaderOptions{}).ReadAll()
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "out", "output.csv")
	require.NoError(t, WriteFile(p, fr, WriterOptions{}))
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, in, string(b))

	back, err := ReadFile(p, ReaderOptions{})
	require.NoError(t, err)
	assert.Equal(t, fr.Schema(), back.Schema())
}

func TestWriteTimeKeepsFraction(t *testing.T) {
	c, err := j.NewColumn("at", j.KindTime, 1)
	require.NoError(t, err)
	c.(*j.TimeColumn).Set(0, time.Date(2024, 1, 2, 10, 0, 0, 123000000, time.UTC))
	fr, err := j.NewFrameFromColumns(c)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, fr, WriterOptions{}))
	assert.Equal(t, "at\n2024-01-02T10:00:00.123Z\n", buf.String())
}

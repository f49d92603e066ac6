package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	p := filepath.Join(dir, "people.csv")
	require.NoError(t, os.WriteFile(p, []byte("age,city\n20,NY\n,LA\n40,NY\n"), 0o644))
	return p
}

func TestRunDefaults(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)
	_, stderr, err := execute(t, "run", in, "--out-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, filepath.Join(dir, "output.csv"))

	b, err := os.ReadFile(filepath.Join(dir, "output.csv"))
	require.NoError(t, err)
	assert.Equal(t, "age,city_LA,city_NY\n20.0,0,1\n30.0,1,0\n40.0,0,1\n", string(b))
}

func TestRunExplicitOutputJSON(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)
	out := filepath.Join(dir, "nested", "prepared.json")
	_, _, err := execute(t, "run", in, "--impute", "none", "--encode=false", "--format", "json", "--output", out)
	require.NoError(t, err)

	var recs []map[string]any
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &recs))
	require.Len(t, recs, 3)
	assert.Nil(t, recs[1]["age"])
	assert.Equal(t, "LA", recs[1]["city"])
}

func TestRunRejectsUnknownMethod(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)
	_, _, err := execute(t, "run", in, "--impute", "zero", "--out-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero")
	_, statErr := os.Stat(filepath.Join(dir, "output.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDescribeJSON(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)
	stdout, _, err := execute(t, "describe", in, "--json")
	require.NoError(t, err)

	var s struct {
		Layout  string `json:"layout"`
		Columns []struct {
			Name    string `json:"name"`
			Numeric struct {
				Count int     `json:"count"`
				Mean  float64 `json:"mean"`
			} `json:"numeric"`
		} `json:"columns"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &s))
	assert.Equal(t, "numeric", s.Layout)
	require.Len(t, s.Columns, 1)
	assert.Equal(t, 2, s.Columns[0].Numeric.Count)
	assert.Equal(t, 30.0, s.Columns[0].Numeric.Mean)
}

func TestDescribeText(t *testing.T) {
	in := writeInput(t, t.TempDir())
	stdout, _, err := execute(t, "describe", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Data Summary:")
	assert.Contains(t, stdout, "30.000000")
}

func TestDescribeDelimiter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "semi.csv")
	require.NoError(t, os.WriteFile(p, []byte("a;b\n1;x\n3;y\n"), 0o644))

	_, _, err := execute(t, "describe", p)
	require.NoError(t, err)
	stdout, _, err := execute(t, "describe", p, "--delimiter", ";", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"name": "a"`)
	assert.Contains(t, stdout, `"mean": 2`)

	_, _, err = execute(t, "describe", p, "--delimiter", ";;")
	assert.Error(t, err)
}

func TestRunStrictAndIndent(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(p, []byte("a,b\n1,x\n2\n"), 0o644))

	_, _, err := execute(t, "run", p, "--strict", "--out-dir", dir)
	require.Error(t, err)

	_, stderr, err := execute(t, "run", p, "--encode=false", "--format", "json", "--indent", "--out-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "short_records=1")
	b, err := os.ReadFile(filepath.Join(dir, "output.json"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"a": 1`)
}

func TestRunLongRecordFails(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "long.csv")
	require.NoError(t, os.WriteFile(p, []byte("a,b\n1,2\n3,4,99\n"), 0o644))
	_, _, err := execute(t, "run", p, "--out-dir", dir)
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "output.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dataprepkit "+version+"\n", stdout)
}

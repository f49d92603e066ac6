// Package kit wraps one loaded table and sequences the preparation steps on
// it: summarize, visualize, impute, encode and export.
package kit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sjwhitworth/golearn/base"

	adapters "github.com/wdm0006/dataprepkit/adapters/golearn"
	"github.com/wdm0006/dataprepkit/pkg/chart"
	"github.com/wdm0006/dataprepkit/pkg/dataset"
	"github.com/wdm0006/dataprepkit/pkg/io/csvio"
	"github.com/wdm0006/dataprepkit/pkg/profile"
	"github.com/wdm0006/dataprepkit/pkg/transform/encode"
	"github.com/wdm0006/dataprepkit/pkg/transform/impute"
)

// Kit owns one frame exclusively. It is not safe for concurrent use.
type Kit struct {
	frame    *dataset.Frame
	source   string
	outDir   string
	chartDir string
	stdout   io.Writer
	log      *slog.Logger

	delim      rune
	strict     bool
	jsonIndent bool
}

// New loads path and returns a Kit around the table.
func New(path string, opts ...Option) (*Kit, error) {
	k := newKit(opts)
	f, err := Load(path, csvio.ReaderOptions{Delimiter: k.delim, Strict: k.strict}, k.log)
	if err != nil {
		return nil, err
	}
	k.frame, k.source = f, path
	k.log.Debug("loaded", "path", path, "rows", f.Rows(), "cols", f.Cols())
	return k, nil
}

// FromFrame wraps an already built frame.
func FromFrame(f *dataset.Frame, opts ...Option) *Kit {
	k := newKit(opts)
	k.frame = f
	return k
}

func newKit(opts []Option) *Kit {
	k := &Kit{
		outDir:   ".",
		chartDir: chart.DefaultDir,
		stdout:   os.Stdout,
		log:      slog.Default(),
	}
	for _, o := range opts {
		o(k)
	}
	return k
}

func (k *Kit) Frame() *dataset.Frame { return k.frame }

// Source is the path the table was loaded from, empty for FromFrame.
func (k *Kit) Source() string { return k.source }

// Describe computes the summary without printing it.
func (k *Kit) Describe() *profile.Summary { return profile.Describe(k.frame) }

// Summarize prints "Data Summary:" and the describe table, then renders the
// charts.
func (k *Kit) Summarize() error {
	fmt.Fprintln(k.stdout, "Data Summary:")
	k.Describe().Render(k.stdout)
	_, err := k.Visualize()
	return err
}

// Visualize writes one chart per numeric or string column and returns the
// file paths.
func (k *Kit) Visualize() ([]string, error) {
	paths, err := chart.Render(k.frame, chart.Options{Dir: k.chartDir})
	if err != nil {
		return paths, err
	}
	k.log.Debug("charts written", "dir", k.chartDir, "count", len(paths))
	return paths, nil
}

// HandleMissing fills absent cells column by column with the named method.
// An unknown method leaves the table untouched.
func (k *Kit) HandleMissing(method string) error {
	m, err := impute.ParseMethod(method)
	if err != nil {
		return err
	}
	p, err := impute.Pipeline(m, k.frame.Schema())
	if err != nil {
		return err
	}
	before := k.nulls()
	f, err := p.Run(context.Background(), k.frame)
	if err != nil {
		return err
	}
	k.frame = f
	k.log.Debug("imputed", "method", string(m), "filled", before-k.nulls())
	return nil
}

func (k *Kit) nulls() int {
	n := 0
	for _, name := range k.frame.Schema().Names() {
		n += k.frame.NullCount(name)
	}
	return n
}

// Encode replaces every string column with one-hot indicator columns.
func (k *Kit) Encode() error {
	p := dataset.NewPipeline().Add(&encode.OneHot{})
	f, err := p.Run(context.Background(), k.frame)
	if err != nil {
		return err
	}
	k.frame = f
	k.log.Debug("encoded", "cols", f.Cols())
	return nil
}

// Export writes the table to the fixed output file for format inside the
// output directory, overwriting it, and returns the path.
func (k *Kit) Export(format string) (string, error) {
	if format == "" {
		format = string(DefaultFormat)
	}
	f, err := ParseFormat("export", format)
	if err != nil {
		return "", err
	}
	path := filepath.Join(k.outDir, OutputName(f))
	return path, k.exportTo(f, path)
}

// ExportTo is Export with an explicit target path ("-" for stdout).
func (k *Kit) ExportTo(format, path string) error {
	if format == "" {
		format = string(DefaultFormat)
	}
	f, err := ParseFormat("export", format)
	if err != nil {
		return err
	}
	return k.exportTo(f, path)
}

func (k *Kit) exportTo(f Format, path string) error {
	if err := k.write(f, path); err != nil {
		return err
	}
	k.log.Debug("exported", "format", string(f), "path", path, "rows", k.frame.Rows())
	return nil
}

// Instances hands the current table to golearn, last column as class.
func (k *Kit) Instances() (*base.DenseInstances, error) {
	return adapters.ToDenseInstances(k.frame)
}

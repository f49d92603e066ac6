package kit

import (
	"io"
	"log/slog"
)

// Option configures a Kit.
type Option func(*Kit)

// WithOutputDir sets the directory Export writes into. Default ".".
func WithOutputDir(dir string) Option { return func(k *Kit) { k.outDir = dir } }

// WithChartDir sets the directory Visualize writes charts into.
func WithChartDir(dir string) Option { return func(k *Kit) { k.chartDir = dir } }

// WithStdout redirects summary output. Default os.Stdout.
func WithStdout(w io.Writer) Option { return func(k *Kit) { k.stdout = w } }

func WithLogger(l *slog.Logger) Option { return func(k *Kit) { k.log = l } }

// WithCSVDelimiter sets the field delimiter for CSV input and output.
func WithCSVDelimiter(r rune) Option { return func(k *Kit) { k.delim = r } }

// WithStrictCSV makes CSV records shorter than the header a load error
// instead of padding them with absent cells.
func WithStrictCSV(strict bool) Option { return func(k *Kit) { k.strict = strict } }

// WithJSONIndent pretty-prints JSON exports.
func WithJSONIndent(indent bool) Option { return func(k *Kit) { k.jsonIndent = indent } }

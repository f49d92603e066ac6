package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/wdm0006/dataprepkit/pkg/chart"
	"github.com/wdm0006/dataprepkit/pkg/kit"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dataprepkit",
		Short:         "Load, summarize, impute, encode and export a tabular file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newDescribeCmd(), newVersionCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run <input>",
		Short: "Prepare a csv, xls/xlsx or json file and export the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.config != "" {
				cfg, err := LoadConfig(o.config)
				if err != nil {
					return err
				}
				o.merge(cfg, cmd.Flags())
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.impute, "impute", "mean", "missing-value method: mean|median|mode|forward-fill|backward-fill|none")
	f.BoolVar(&o.encode, "encode", true, "one-hot encode string columns")
	f.BoolVar(&o.summarize, "summarize", false, "print the summary and write charts first")
	f.StringVar(&o.format, "format", "csv", "export format: csv|xls|xlsx|json")
	f.StringVar(&o.output, "output", "", "explicit output path (\"-\" for stdout); default output.<ext> in --out-dir")
	f.StringVar(&o.outDir, "out-dir", ".", "directory for the default output file")
	f.StringVar(&o.chartDir, "chart-dir", chart.DefaultDir, "directory for chart PNGs")
	f.StringVar(&o.delimiter, "delimiter", ",", "CSV field delimiter")
	f.BoolVar(&o.strict, "strict", false, "fail on CSV records shorter than the header")
	f.BoolVar(&o.indent, "indent", false, "pretty-print JSON output")
	f.StringVar(&o.config, "config", "", "JSON, YAML or TOML file with the same keys; explicit flags win")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging on stderr")
	return cmd
}

func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func parseDelimiter(s string) (rune, error) {
	delim, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return delim, nil
}

func run(stdout, stderr io.Writer, input string, o runOptions) error {
	delim, err := parseDelimiter(o.delimiter)
	if err != nil {
		return err
	}
	k, err := kit.New(input,
		kit.WithOutputDir(o.outDir),
		kit.WithChartDir(o.chartDir),
		kit.WithStdout(stdout),
		kit.WithLogger(newLogger(stderr, o.verbose)),
		kit.WithCSVDelimiter(delim),
		kit.WithStrictCSV(o.strict),
		kit.WithJSONIndent(o.indent),
	)
	if err != nil {
		return err
	}
	if o.summarize {
		if err := k.Summarize(); err != nil {
			return err
		}
	}
	if o.impute != "none" {
		if err := k.HandleMissing(o.impute); err != nil {
			return err
		}
	}
	if o.encode {
		if err := k.Encode(); err != nil {
			return err
		}
	}
	if o.output != "" {
		return k.ExportTo(o.format, o.output)
	}
	path, err := k.Export(o.format)
	if err != nil {
		return err
	}
	fmt.Fprintln(stderr, "wrote", path)
	return nil
}

func newDescribeCmd() *cobra.Command {
	var (
		asJSON    bool
		delimiter string
		strict    bool
	)
	cmd := &cobra.Command{
		Use:   "describe <input>",
		Short: "Print descriptive statistics without writing charts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delim, err := parseDelimiter(delimiter)
			if err != nil {
				return err
			}
			k, err := kit.New(args[0],
				kit.WithCSVDelimiter(delim),
				kit.WithStrictCSV(strict),
				kit.WithLogger(newLogger(cmd.ErrOrStderr(), false)),
			)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(k.Describe())
			}
			fmt.Fprintln(out, "Data Summary:")
			k.Describe().Render(out)
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&asJSON, "json", false, "emit the summary as JSON")
	f.StringVar(&delimiter, "delimiter", ",", "CSV field delimiter")
	f.BoolVar(&strict, "strict", false, "fail on CSV records shorter than the header")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "dataprepkit", version)
		},
	}
}

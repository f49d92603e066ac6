package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	yaml "gopkg.in/yaml.v3"
)

// Config mirrors the run flags so a preparation can be kept in a file.
type Config struct {
	Impute    string `json:"impute" yaml:"impute" toml:"impute"`
	Encode    *bool  `json:"encode" yaml:"encode" toml:"encode"`
	Summarize *bool  `json:"summarize" yaml:"summarize" toml:"summarize"`
	Format    string `json:"format" yaml:"format" toml:"format"`
	Output    string `json:"output" yaml:"output" toml:"output"`
	OutDir    string `json:"out_dir" yaml:"out_dir" toml:"out_dir"`
	ChartDir  string `json:"chart_dir" yaml:"chart_dir" toml:"chart_dir"`
	Delimiter string `json:"delimiter" yaml:"delimiter" toml:"delimiter"`
	Strict    *bool  `json:"strict" yaml:"strict" toml:"strict"`
	Indent    *bool  `json:"indent" yaml:"indent" toml:"indent"`
}

var unmarshalers = map[string]func([]byte, any) error{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// LoadConfig decodes path by its extension.
func LoadConfig(path string) (*Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	unmarshal, ok := unmarshalers[ext]
	if !ok {
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// runOptions holds the effective settings of the run command.
type runOptions struct {
	impute    string
	encode    bool
	summarize bool
	format    string
	output    string
	outDir    string
	chartDir  string
	delimiter string
	strict    bool
	indent    bool
	config    string
	verbose   bool
}

// merge copies file values into o for every flag the user did not set.
func (o *runOptions) merge(cfg *Config, flags *pflag.FlagSet) {
	str := func(name string, dst *string, v string) {
		if v != "" && !flags.Changed(name) {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool, v *bool) {
		if v != nil && !flags.Changed(name) {
			*dst = *v
		}
	}
	str("impute", &o.impute, cfg.Impute)
	boolean("encode", &o.encode, cfg.Encode)
	boolean("summarize", &o.summarize, cfg.Summarize)
	str("format", &o.format, cfg.Format)
	str("output", &o.output, cfg.Output)
	str("out-dir", &o.outDir, cfg.OutDir)
	str("chart-dir", &o.chartDir, cfg.ChartDir)
	str("delimiter", &o.delimiter, cfg.Delimiter)
	boolean("strict", &o.strict, cfg.Strict)
	boolean("indent", &o.indent, cfg.Indent)
}

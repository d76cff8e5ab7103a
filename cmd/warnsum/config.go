package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tinytelemetry/warnsum/internal/model"
	"github.com/tinytelemetry/warnsum/internal/report"
)

const (
	defaultTopN        = model.DefaultTopN
	defaultKeywordLen  = model.DefaultMinKeywordLength
	defaultMaxLineSize = model.DefaultMaxLineSize
	defaultFormat      = report.FormatText
	defaultLogLevel    = "warn"
)

// errHelp is returned by loadConfig after usage was printed for --help.
var errHelp = errors.New("help requested")

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	TopN        int    `mapstructure:"top"`
	KeywordLen  int    `mapstructure:"keyword-len"`
	Format      string `mapstructure:"format"`
	TUI         bool   `mapstructure:"tui"`
	MaxLineSize int    `mapstructure:"max-line-size"`
	LogLevel    string `mapstructure:"log-level"`
	ShowVersion bool   `mapstructure:"version"`
	Path        string `mapstructure:"-"` // positional argument

	logLevel slog.Level
}

func newFlagSet(output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("warnsum", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false

	fs.IntP("top", "n", defaultTopN, "top N items to display in each category (0 shows all)")
	fs.IntP("keyword-len", "k", defaultKeywordLen, "minimum length of interesting keywords")
	fs.StringP("format", "f", defaultFormat, "output format: text, json or yaml")
	fs.Bool("tui", false, "browse the summary interactively instead of printing a report")
	fs.Int("max-line-size", defaultMaxLineSize, "longest log line in bytes; longer lines are skipped")
	fs.String("log-level", defaultLogLevel, "diagnostic log level on stderr: debug, info, warn or error")
	fs.Bool("version", false, "print version information")

	fs.Usage = func() {
		fmt.Fprint(output, `warnsum - summarise compiler warnings from a build log

Usage:
  warnsum [options] <logfile>

Arguments:
  logfile   path to the build log, or - to read standard input

Options:
`)
		fs.PrintDefaults()
	}
	return fs
}

func loadConfig(args []string, output io.Writer) (appConfig, error) {
	var cfg appConfig

	fs := newFlagSet(output)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cfg, errHelp
		}
		return cfg, &exitError{code: 2, err: err}
	}

	v := viper.New()
	v.SetDefault("top", defaultTopN)
	v.SetDefault("keyword-len", defaultKeywordLen)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("tui", false)
	v.SetDefault("max-line-size", defaultMaxLineSize)
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("version", false)

	if err := v.BindPFlags(fs); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	switch fs.NArg() {
	case 1:
		cfg.Path = fs.Arg(0)
	case 0:
		fs.Usage()
		return cfg, &exitError{code: 2, err: errors.New("missing log file argument")}
	default:
		return cfg, &exitError{code: 2, err: fmt.Errorf("expected one log file, got %d arguments", fs.NArg())}
	}

	if err := cfg.validate(); err != nil {
		return cfg, &exitError{code: 2, err: err}
	}
	return cfg, nil
}

func (c *appConfig) validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("invalid top: %d", c.TopN)
	}
	if c.KeywordLen < 1 {
		return fmt.Errorf("invalid keyword-len: %d", c.KeywordLen)
	}
	if c.MaxLineSize <= 0 {
		return fmt.Errorf("invalid max-line-size: %d", c.MaxLineSize)
	}

	format, err := report.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	c.Format = format

	if err := c.logLevel.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log-level %q", c.LogLevel)
	}
	return nil
}

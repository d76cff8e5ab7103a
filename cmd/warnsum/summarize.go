package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tinytelemetry/warnsum/internal/ingest"
	"github.com/tinytelemetry/warnsum/internal/logparse"
	"github.com/tinytelemetry/warnsum/internal/logsource"
	"github.com/tinytelemetry/warnsum/internal/model"
	"github.com/tinytelemetry/warnsum/internal/report"
	"github.com/tinytelemetry/warnsum/internal/summary"
	"github.com/tinytelemetry/warnsum/internal/tui"
)

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// summarize scans the configured log and renders its summary.
func summarize(ctx context.Context, cfg appConfig, stdout io.Writer, logger *slog.Logger) error {
	s, err := collect(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if cfg.TUI {
		return tui.Run(s, logsource.Name(cfg.Path))
	}
	return report.Write(stdout, cfg.Format, s, report.Options{TopN: cfg.TopN})
}

// collect runs the extract and count pass over the input.
func collect(ctx context.Context, cfg appConfig, logger *slog.Logger) (model.Summary, error) {
	rc, err := logsource.Open(cfg.Path)
	if err != nil {
		return model.Summary{}, err
	}
	defer rc.Close()

	source := logsource.Name(cfg.Path)
	agg := summary.NewAggregator(logparse.NewKeywordExtractor(cfg.KeywordLen))
	proc := ingest.NewProcessor(agg, source, logger)

	err = logsource.ScanLines(ctx, rc, cfg.MaxLineSize, func(lineNo int, line string) {
		proc.ProcessEnvelope(model.IngestEnvelope{Source: source, LineNo: lineNo, Line: line})
	}, proc.SkipLine)
	if err != nil {
		return model.Summary{}, fmt.Errorf("could not read file `%s`: %w", source, err)
	}

	scanned, matched := proc.Stats()
	logger.Info("warnsum: scan complete", "source", source, "lines", scanned, "warnings", matched, "skipped", proc.Skipped())
	return agg.Snapshot(), nil
}

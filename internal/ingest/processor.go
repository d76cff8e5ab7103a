package ingest

import (
	"log/slog"

	"github.com/tinytelemetry/warnsum/internal/logparse"
	"github.com/tinytelemetry/warnsum/internal/model"
)

// Processor matches log lines against the compiler warning shape and routes
// matches to a sink.
type Processor struct {
	sink       RecordSink
	sourceName string
	logger     *slog.Logger

	scanned int
	matched int
	skipped int
}

// NewProcessor creates a new processor. A nil logger discards debug output.
func NewProcessor(sink RecordSink, sourceName string, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Processor{
		sink:       sink,
		sourceName: sourceName,
		logger:     logger,
	}
}

// ProcessResult holds the result of processing a matched line.
type ProcessResult struct {
	Record model.WarningRecord
}

// ProcessLine processes one untagged line.
// Returns nil if the line is not a compiler warning.
func (p *Processor) ProcessLine(line string) *ProcessResult {
	return p.ProcessEnvelope(model.IngestEnvelope{
		Source: p.sourceName,
		LineNo: p.scanned + 1,
		Line:   line,
	})
}

// ProcessEnvelope processes one source-tagged line.
// Returns nil if the line is not a compiler warning.
func (p *Processor) ProcessEnvelope(env model.IngestEnvelope) *ProcessResult {
	p.scanned++

	record, ok := logparse.MatchWarning(env.Line)
	if !ok {
		return nil
	}
	p.matched++

	p.logger.Debug("ingest: matched warning",
		"source", env.Source,
		"line", env.LineNo,
		"file", record.FilePath,
		"flag", record.Flag,
	)

	if p.sink != nil {
		p.sink.Add(record)
	}
	return &ProcessResult{Record: record}
}

// SkipLine records a line dropped for exceeding the max line size.
// It counts as scanned and never matches.
func (p *Processor) SkipLine(lineNo, size int) {
	p.scanned++
	p.skipped++
	p.logger.Debug("ingest: skipped over-long line",
		"source", p.sourceName,
		"line", lineNo,
		"bytes", size,
	)
}

// Skipped returns the number of lines dropped by SkipLine.
func (p *Processor) Skipped() int { return p.skipped }

// Stats returns the number of lines seen and warnings matched.
func (p *Processor) Stats() (scanned, matched int) {
	return p.scanned, p.matched
}

// SourceName returns the name used for untagged lines.
func (p *Processor) SourceName() string { return p.sourceName }

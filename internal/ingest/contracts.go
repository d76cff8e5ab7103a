package ingest

import "github.com/tinytelemetry/warnsum/internal/model"

// RecordSink receives every warning the processor matches.
// summary.Aggregator satisfies it.
type RecordSink interface {
	Add(model.WarningRecord)
}

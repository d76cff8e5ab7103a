package summary

import (
	"github.com/tinytelemetry/warnsum/internal/logparse"
	"github.com/tinytelemetry/warnsum/internal/model"
)

// Aggregator folds warning records into the four frequency tables.
// It is owned by a single run and is not safe for concurrent use.
type Aggregator struct {
	keywords *logparse.KeywordExtractor

	total       int
	flags       *FrequencyTable
	files       *FrequencyTable
	directories *FrequencyTable
	words       *FrequencyTable
}

// NewAggregator creates an aggregator using the given keyword extractor.
// A nil extractor selects one with the default minimum length.
func NewAggregator(keywords *logparse.KeywordExtractor) *Aggregator {
	if keywords == nil {
		keywords = logparse.NewKeywordExtractor(0)
	}
	return &Aggregator{
		keywords:    keywords,
		flags:       NewFrequencyTable(),
		files:       NewFrequencyTable(),
		directories: NewFrequencyTable(),
		words:       NewFrequencyTable(),
	}
}

// Add records one warning.
func (a *Aggregator) Add(rec model.WarningRecord) {
	a.total++
	a.flags.Add(rec.Flag)

	dirKey, fileKey := logparse.SplitPath(rec.FilePath)
	a.files.Add(fileKey)
	a.directories.Add(dirKey)

	for _, word := range a.keywords.Extract(rec.Message) {
		a.words.Add(word)
	}
}

// Total returns the number of warnings recorded.
func (a *Aggregator) Total() int { return a.total }

// Snapshot returns the four tables as report sections.
// The warnings total is the number of warnings; every other total is the
// number of distinct keys in its table.
func (a *Aggregator) Snapshot() model.Summary {
	return model.Summary{
		Warnings: model.Section{
			Title:   model.SectionWarnings,
			Entries: a.flags.Sorted(),
			Total:   a.flags.Sum(),
		},
		Files:       distinctSection(model.SectionFiles, a.files),
		Directories: distinctSection(model.SectionDirectories, a.directories),
		Keywords:    distinctSection(model.SectionKeywords, a.words),
	}
}

func distinctSection(title string, t *FrequencyTable) model.Section {
	return model.Section{Title: title, Entries: t.Sorted(), Total: t.Len()}
}

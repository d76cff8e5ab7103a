package model

// WarningRecord is one compiler warning matched in a build log.
// It is created once per matched line and consumed by the aggregator.
type WarningRecord struct {
	FilePath string // path exactly as it appeared in the log
	Line     int
	Column   int
	Message  string // text between "warning:" and the flag bracket
	Flag     string // warning flag without the leading -W
}

// Count represents a key and how often it was seen.
type Count struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// Section is one rendered frequency table.
//
// Entries are sorted by descending count, ties broken by ascending key.
// Total is the sum of counts for the warnings section and the number of
// distinct keys for every other section.
type Section struct {
	Title   string  `json:"title" yaml:"title"`
	Entries []Count `json:"entries" yaml:"entries"`
	Total   int     `json:"total" yaml:"total"`
}

// Sum returns the sum of all entry counts.
func (s Section) Sum() int {
	sum := 0
	for _, e := range s.Entries {
		sum += e.Count
	}
	return sum
}

// Summary is the complete result of one run.
type Summary struct {
	Warnings    Section `json:"warnings" yaml:"warnings"`
	Files       Section `json:"files" yaml:"files"`
	Directories Section `json:"directories" yaml:"directories"`
	Keywords    Section `json:"keywords" yaml:"keywords"`
}

// Sections returns the four sections in report order.
func (s Summary) Sections() []Section {
	return []Section{s.Warnings, s.Files, s.Directories, s.Keywords}
}

// Section titles in report order.
const (
	SectionWarnings    = "Warnings"
	SectionFiles       = "Files"
	SectionDirectories = "Directories"
	SectionKeywords    = "Keywords"
)

package model

// Shared defaults used by the CLI, the report and the browser.
const (
	DefaultTopN             = 10
	DefaultMinKeywordLength = 5
	DefaultMaxLineSize      = 1024 * 1024 // 1MB
)

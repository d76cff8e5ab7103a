package model

// IngestEnvelope carries one raw log line with its position in the input.
// It is the contract between the log source and the processor.
type IngestEnvelope struct {
	Source string
	LineNo int
	Line   string
}

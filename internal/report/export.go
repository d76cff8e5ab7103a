package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/warnsum/internal/model"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// ParseFormat normalizes a format name, accepting "yml" for YAML.
func ParseFormat(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(Formats, ", "))
	}
}

// SectionDoc is a section as exported to JSON or YAML.
type SectionDoc struct {
	Entries []model.Count `json:"entries" yaml:"entries"`
	More    int           `json:"more,omitempty" yaml:"more,omitempty"`
	Total   int           `json:"total" yaml:"total"`
}

// Document is the structured form of a summary.
type Document struct {
	Warnings    SectionDoc `json:"warnings" yaml:"warnings"`
	Files       SectionDoc `json:"files" yaml:"files"`
	Directories SectionDoc `json:"directories" yaml:"directories"`
	Keywords    SectionDoc `json:"keywords" yaml:"keywords"`
}

// NewDocument builds the exported document, applying opts.TopN per section.
func NewDocument(s model.Summary, opts Options) Document {
	return Document{
		Warnings:    newSectionDoc(s.Warnings, opts),
		Files:       newSectionDoc(s.Files, opts),
		Directories: newSectionDoc(s.Directories, opts),
		Keywords:    newSectionDoc(s.Keywords, opts),
	}
}

func newSectionDoc(sec model.Section, opts Options) SectionDoc {
	shown, more := Truncate(sec, opts.TopN)
	entries := shown.Entries
	if entries == nil {
		entries = []model.Count{}
	}
	return SectionDoc{Entries: entries, More: more, Total: sec.Total}
}

// WriteJSON writes the summary as indented JSON.
func WriteJSON(w io.Writer, s model.Summary, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(s, opts))
}

// WriteYAML writes the summary as YAML.
func WriteYAML(w io.Writer, s model.Summary, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(s, opts)); err != nil {
		return err
	}
	return enc.Close()
}

// Write renders s in the named format.
func Write(w io.Writer, format string, s model.Summary, opts Options) error {
	switch format {
	case FormatText:
		return WriteText(w, s, opts)
	case FormatJSON:
		return WriteJSON(w, s, opts)
	case FormatYAML:
		return WriteYAML(w, s, opts)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

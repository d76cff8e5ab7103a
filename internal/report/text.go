// Package report renders a warning summary as the fixed text report or as
// structured JSON/YAML.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tinytelemetry/warnsum/internal/model"
)

// Options control how many rows each section shows.
type Options struct {
	// TopN limits each section to its first N rows; 0 shows everything.
	TopN int
}

// Truncate returns sec limited to topN entries and the number of entries cut.
func Truncate(sec model.Section, topN int) (model.Section, int) {
	if topN <= 0 || len(sec.Entries) <= topN {
		return sec, 0
	}
	more := len(sec.Entries) - topN
	sec.Entries = sec.Entries[:topN]
	return sec, more
}

// FormatSection renders one section without its heading.
//
// Counts are right-aligned to the digit width of the section's count sum.
// Rows beyond TopN collapse into a "(+N more items)" row before the total.
func FormatSection(sec model.Section, opts Options) string {
	width := len(strconv.Itoa(sec.Sum()))

	shown, more := Truncate(sec, opts.TopN)

	var b strings.Builder
	for _, e := range shown.Entries {
		fmt.Fprintf(&b, "%*d  %s\n", width, e.Count, e.Key)
	}
	if more > 0 {
		fmt.Fprintf(&b, "%s  (+%d more items)\n", strings.Repeat(" ", width), more)
	}
	fmt.Fprintf(&b, "%*d  Total", width, sec.Total)
	return b.String()
}

// WriteText writes the four sections in report order, separated by blank lines.
func WriteText(w io.Writer, s model.Summary, opts Options) error {
	parts := make([]string, 0, 4)
	for _, sec := range s.Sections() {
		parts = append(parts, sec.Title+":\n"+FormatSection(sec, opts)+"\n")
	}
	_, err := io.WriteString(w, strings.Join(parts, "\n"))
	return err
}

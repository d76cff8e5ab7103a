package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tinytelemetry/warnsum/internal/model"
)

// renderRows renders every entry of sec as a numbered row with a bar sized
// relative to the top entry, followed by the section total.
func renderRows(sec model.Section, width int) string {
	if len(sec.Entries) == 0 {
		return helpStyle.Render("No warnings found") + "\n" + totalStyle.Render("0  Total")
	}

	countFieldWidth := len(strconv.Itoa(sec.Entries[0].Count))
	if countFieldWidth < 3 {
		countFieldWidth = 3
	}
	indexWidth := len(strconv.Itoa(len(sec.Entries)))

	barWidth := 15
	if width < 60 {
		barWidth = 8
	}
	fixedOverhead := indexWidth + 2 + 1 + (countFieldWidth + 1) + barWidth + 2
	labelWidth := width - fixedOverhead
	if labelWidth < 8 {
		labelWidth = 8
	}

	topCount := sec.Entries[0].Count
	lines := make([]string, 0, len(sec.Entries)+1)
	for i, entry := range sec.Entries {
		filled := int(float64(entry.Count) / float64(topCount) * float64(barWidth))
		if filled == 0 && entry.Count > 0 {
			filled = 1
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

		line := fmt.Sprintf("%*d. %-*s %*d |%s|",
			indexWidth, i+1,
			labelWidth, truncateLabel(displayKey(entry.Key), labelWidth),
			countFieldWidth, entry.Count,
			bar)
		lines = append(lines, rowStyle.Render(line))
	}
	lines = append(lines, totalStyle.Render(fmt.Sprintf("%*s  %-*s %*d",
		indexWidth, "", labelWidth, "Total", countFieldWidth, sec.Total)))

	return strings.Join(lines, "\n")
}

// displayKey shows the root-level empty directory key as "."
func displayKey(key string) string {
	if key == "" {
		return "."
	}
	return key
}

// truncateLabel shortens s to at most width runes, keeping its tail: for
// paths the file name is the interesting part.
func truncateLabel(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[len(runes)-width:])
	}
	return "…" + string(runes[len(runes)-width+1:])
}

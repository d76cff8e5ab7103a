package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/warnsum/internal/model"
)

func testSummary() model.Summary {
	return model.Summary{
		Warnings: model.Section{
			Title:   model.SectionWarnings,
			Entries: []model.Count{{Key: "horrible-stuff", Count: 2}, {Key: "bad-thing", Count: 1}},
			Total:   3,
		},
		Files: model.Section{
			Title:   model.SectionFiles,
			Entries: []model.Count{{Key: "/path/to/dir2/file2.c", Count: 2}, {Key: "/path/to/dir1/file1.c", Count: 1}},
			Total:   2,
		},
		Directories: model.Section{
			Title:   model.SectionDirectories,
			Entries: []model.Count{{Key: "/path/to/dir2", Count: 2}, {Key: "", Count: 1}},
			Total:   2,
		},
		Keywords: model.Section{Title: model.SectionKeywords},
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBrowserModel_SectionCycling(t *testing.T) {
	t.Parallel()

	m := NewBrowserModel(testSummary(), "build.log")
	if got := m.ActiveSection().Title; got != model.SectionWarnings {
		t.Fatalf("initial section = %q, want %q", got, model.SectionWarnings)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.ActiveSection().Title; got != model.SectionFiles {
		t.Fatalf("after tab = %q, want %q", got, model.SectionFiles)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.ActiveSection().Title; got != model.SectionKeywords {
		t.Fatalf("after wrapping back = %q, want %q", got, model.SectionKeywords)
	}
}

func TestBrowserModel_VimSectionKeys(t *testing.T) {
	t.Parallel()

	m := NewBrowserModel(testSummary(), "build.log")
	m.Update(runeKey('l'))
	if got := m.ActiveSection().Title; got != model.SectionFiles {
		t.Fatalf("after l = %q, want %q", got, model.SectionFiles)
	}
	m.Update(runeKey('h'))
	if got := m.ActiveSection().Title; got != model.SectionWarnings {
		t.Fatalf("after h = %q, want %q", got, model.SectionWarnings)
	}
	if m.showHelp {
		t.Fatal("h must not open help")
	}
}

func TestBrowserModel_Quit(t *testing.T) {
	t.Parallel()

	m := NewBrowserModel(testSummary(), "build.log")
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("command returned %T, want tea.QuitMsg", cmd())
	}
}

func TestBrowserModel_HelpBlocksNavigation(t *testing.T) {
	t.Parallel()

	m := NewBrowserModel(testSummary(), "build.log")
	m.Update(runeKey('?'))
	if !m.showHelp {
		t.Fatal("expected help to be shown")
	}
	if view := m.View(); !strings.Contains(view, "next section") {
		t.Errorf("help view missing bindings:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.ActiveSection().Title; got != model.SectionWarnings {
		t.Fatalf("tab while help open moved to %q", got)
	}

	m.Update(runeKey('?'))
	if m.showHelp {
		t.Fatal("expected help to be closed")
	}
}

func TestBrowserModel_ViewAfterResize(t *testing.T) {
	t.Parallel()

	m := NewBrowserModel(testSummary(), "build.log")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	for _, want := range []string{"Warnings (3)", "Files (2)", "horrible-stuff", "Total", "build.log"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRenderRows(t *testing.T) {
	t.Parallel()

	out := renderRows(testSummary().Directories, 60)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("renderRows produced %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "/path/to/dir2") {
		t.Errorf("first row = %q, want the top directory", lines[0])
	}
	if !strings.Contains(lines[1], " . ") {
		t.Errorf("second row = %q, want the empty directory shown as '.'", lines[1])
	}
	if !strings.Contains(lines[2], "Total") {
		t.Errorf("last row = %q, want the total", lines[2])
	}
}

func TestRenderRows_Empty(t *testing.T) {
	t.Parallel()

	out := renderRows(model.Section{Title: model.SectionKeywords}, 80)
	if !strings.Contains(out, "0  Total") {
		t.Errorf("renderRows(empty) = %q, want a zero total", out)
	}
}

func TestTruncateLabel(t *testing.T) {
	t.Parallel()

	if got := truncateLabel("short", 10); got != "short" {
		t.Errorf("truncateLabel(short) = %q", got)
	}
	got := truncateLabel("/very/long/path/to/file.c", 10)
	if got != "…to/file.c" {
		t.Errorf("truncateLabel = %q, want %q", got, "…to/file.c")
	}
}

func TestRenderChart(t *testing.T) {
	t.Parallel()

	if got := renderChart(model.Section{}, 80, chartHeight); got != "" {
		t.Errorf("renderChart(empty) = %q, want empty", got)
	}
	if got := renderChart(testSummary().Warnings, 80, chartHeight); got == "" {
		t.Error("renderChart returned nothing for a populated section")
	}
}

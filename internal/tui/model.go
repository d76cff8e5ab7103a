// Package tui is an interactive browser for a warning summary.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/warnsum/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chartHeight   = 6
)

// BrowserModel is the Bubble Tea model showing one section of a summary at a time.
type BrowserModel struct {
	sections []model.Section
	source   string
	active   int
	keys     KeyMap
	viewport viewport.Model
	showHelp bool

	width  int
	height int
}

// NewBrowserModel creates a browser over s. source names the input in the title bar.
func NewBrowserModel(s model.Summary, source string) *BrowserModel {
	m := &BrowserModel{
		sections: s.Sections(),
		source:   source,
		keys:     DefaultKeyMap(),
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func (m *BrowserModel) Init() tea.Cmd { return nil }

func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.refreshContent()
			return m, nil
		}
		if m.showHelp {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.NextSection):
			m.setActive(m.active + 1)
		case key.Matches(msg, m.keys.PrevSection):
			m.setActive(m.active - 1)
		case key.Matches(msg, m.keys.Up):
			m.viewport.ScrollUp(1)
		case key.Matches(msg, m.keys.Down):
			m.viewport.ScrollDown(1)
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.HalfPageUp()
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.HalfPageDown()
		case key.Matches(msg, m.keys.Home):
			m.viewport.GotoTop()
		case key.Matches(msg, m.keys.End):
			m.viewport.GotoBottom()
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.viewport.ScrollUp(1)
			case tea.MouseButtonWheelDown:
				m.viewport.ScrollDown(1)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *BrowserModel) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render("warnsum"), " ", m.renderTabs())

	var body string
	if m.showHelp {
		body = m.viewport.View()
	} else {
		chart := renderChart(m.ActiveSection(), m.innerWidth(), chartHeight)
		if chart != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, chart, m.viewport.View())
		} else {
			body = m.viewport.View()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		sectionStyle.Width(m.innerWidth()).Render(body),
		m.renderStatusLine(),
	)
}

// ActiveSection returns the section currently displayed.
func (m *BrowserModel) ActiveSection() model.Section {
	return m.sections[m.active]
}

func (m *BrowserModel) setActive(idx int) {
	n := len(m.sections)
	m.active = ((idx % n) + n) % n
	m.resize(m.width, m.height)
	m.viewport.GotoTop()
}

func (m *BrowserModel) resize(width, height int) {
	m.width = width
	m.height = height

	// header, status line, and the section border take four rows
	vpHeight := height - 4
	if renderChart(m.ActiveSection(), m.innerWidth(), chartHeight) != "" {
		vpHeight -= chartHeight
	}
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = m.innerWidth()
	m.viewport.Height = vpHeight
	m.refreshContent()
}

func (m *BrowserModel) innerWidth() int {
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m *BrowserModel) refreshContent() {
	if m.showHelp {
		m.viewport.SetContent(m.renderHelp())
		return
	}
	m.viewport.SetContent(renderRows(m.ActiveSection(), m.innerWidth()))
}

func (m *BrowserModel) renderTabs() string {
	tabs := make([]string, 0, len(m.sections))
	for i, sec := range m.sections {
		label := fmt.Sprintf("%s (%d)", sec.Title, sec.Total)
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *BrowserModel) renderHelp() string {
	var b strings.Builder
	b.WriteString("Key bindings\n\n")
	for _, binding := range m.keys.HelpBindings() {
		h := binding.Help()
		fmt.Fprintf(&b, "  %-14s %s\n", h.Key, h.Desc)
	}
	return b.String()
}

func (m *BrowserModel) renderStatusLine() string {
	left := m.source
	sec := m.ActiveSection()
	right := fmt.Sprintf("%d rows  %3.0f%%  ? help  q quit", len(sec.Entries), m.viewport.ScrollPercent()*100)

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return statusStyle.Render(left + strings.Repeat(" ", space) + right)
}

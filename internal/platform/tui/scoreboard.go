package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ndsweeper/internal/core"
	"github.com/vovakirdan/ndsweeper/internal/registry"
	"github.com/vovakirdan/ndsweeper/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the preset sidebar
	sidebarWidth       = 24  // Width of the preset sidebar
	maxResults         = 100 // Max rows loaded per preset
)

// ScoreboardModel is the Bubble Tea model for the best-times screen.
type ScoreboardModel struct {
	presets     []registry.GameInfo
	cursor      int
	store       *storage.Store
	results     []storage.Result
	stats       *storage.PresetStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        MenuKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard opened on the first preset.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		presets:     registry.List(),
		store:       store,
		keys:        DefaultMenuKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.presets) > 0 {
		m.load(m.presets[0].ID)
	}
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Time", Width: 9},
		{Title: "Moves", Width: 6},
		{Title: "Seed", Width: 12},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads best times and stats for one preset.
func (m *ScoreboardModel) load(presetID string) {
	m.results, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.results, m.loadErr = m.store.BestTimes(presetID, maxResults)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(presetID)
		}
	}

	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			formatDuration(r.Duration),
			fmt.Sprintf("%d", r.Moves),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) move(delta int) {
	if len(m.presets) == 0 {
		return
	}
	m.cursor = core.Wrap(m.cursor+delta, len(m.presets))
	m.load(m.presets[m.cursor].ID)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.Left):
			m.move(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.help.Width = msg.Width
		m.table = m.createTable()
		if len(m.presets) > 0 {
			m.load(m.presets[m.cursor].ID)
		}
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "BEST TIMES"
	if len(m.presets) > 0 {
		p := m.presets[m.cursor]
		title = fmt.Sprintf("BEST TIMES - %s (%s)", p.Title, p.Description)
	}
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if m.showSidebar {
		sidebar := panel.Width(sidebarWidth).Render(m.renderSidebar())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", panel.Render(m.renderTable())))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.currentTitle()), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(panel.Render(m.renderTable()), m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(scoreboardHelp{m.keys})))
	return b.String()
}

func (m ScoreboardModel) currentTitle() string {
	if len(m.presets) == 0 {
		return ""
	}
	return m.presets[m.cursor].Title
}

func (m ScoreboardModel) statsLine() string {
	switch {
	case m.loadErr != nil:
		return "could not load results: " + m.loadErr.Error()
	case m.stats == nil || m.stats.Played == 0:
		return "not played yet"
	default:
		return fmt.Sprintf("played %d  won %d  win rate %.0f%%",
			m.stats.Played, m.stats.Wins, m.stats.WinRate()*100)
	}
}

func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Presets\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, p := range m.presets {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = menuSelectedStyle
		}
		name := p.Title
		if limit := sidebarWidth - 6; len([]rune(name)) > limit {
			name = string([]rune(name)[:limit-1]) + "."
		}
		sb.WriteString(style.Render(cursor + name))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m ScoreboardModel) renderTable() string {
	if len(m.results) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No wins recorded yet.\nClear a board to set a time!")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user wants the menu again.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

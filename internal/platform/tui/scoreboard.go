package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/paint-hit/internal/scores"
	"github.com/vovakirdan/paint-hit/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 50
	nameWidth     = 20
)

// Scoreboard pages.
const (
	pageTop = iota
	pageRuns
	pageCount
)

var pageTitles = [pageCount]string{"Top 10", "Runs by mode"}

// ScoreSource is what the scoreboard reads. storage.Store implements it.
type ScoreSource interface {
	TopScores(limit int) ([]storage.ScoreEntry, error)
	Stats() (map[string]*storage.ModeStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPage, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextPage, k.PrevPage, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high-score viewer.
type ScoreboardModel struct {
	source   ScoreSource
	page     int
	top      []storage.ScoreEntry
	stats    []*storage.ModeStats
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model and loads its data.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	return m
}

// load reads both pages from the source.
func (m *ScoreboardModel) load() {
	if m.source == nil {
		return
	}

	top, err := m.source.TopScores(scores.MaxEntries)
	if err != nil {
		m.err = err
		return
	}
	stats, err := m.source.Stats()
	if err != nil {
		m.err = err
		return
	}

	m.top = top
	m.stats = m.stats[:0]
	for _, s := range stats {
		m.stats = append(m.stats, s)
	}
	sort.Slice(m.stats, func(i, j int) bool {
		return m.stats[i].Mode < m.stats[j].Mode
	})
}

// createTable builds the table for the current page.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	switch m.page {
	case pageTop:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: nameWidth},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 14},
		}
	case pageRuns:
		columns = []table.Column{
			{Title: "Mode", Width: 10},
			{Title: "Runs", Width: 6},
			{Title: "Best", Width: 8},
			{Title: "Average", Width: 9},
			{Title: "Last played", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
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

// rows formats the current page.
func (m *ScoreboardModel) rows() []table.Row {
	var rows []table.Row
	switch m.page {
	case pageTop:
		for i, e := range m.top {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				runewidth.Truncate(e.Name, nameWidth, "…"),
				fmt.Sprintf("%d", e.Score),
				e.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	case pageRuns:
		for _, s := range m.stats {
			rows = append(rows, table.Row{
				s.Mode,
				fmt.Sprintf("%d", s.Runs),
				fmt.Sprintf("%d", s.BestScore),
				fmt.Sprintf("%.1f", s.AvgScore),
				s.LastPlayed.Format("Jan 02 15:04"),
			})
		}
	}
	return rows
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

		case key.Matches(msg, m.keys.NextPage):
			m.page = (m.page + 1) % pageCount
			m.table = m.createTable()
			return m, nil

		case key.Matches(msg, m.keys.PrevPage):
			m.page = (m.page + pageCount - 1) % pageCount
			m.table = m.createTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("PAINT (H)IT - HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := make([]string, pageCount)
	for i, title := range pageTitles {
		if i == m.page {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = tabStyle.Render(title)
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty/error message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Width(tableMinWidth).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not read scores:\n" + m.err.Error())
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

// centerText pads every line of s to center it in width columns.
func centerText(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if pad := (width - lipgloss.Width(line)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard runs the interactive high-score viewer.
func RunScoreboard(source ScoreSource) error {
	cols, rows := TerminalSize()
	p := tea.NewProgram(
		NewScoreboardModel(source, cols, rows),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

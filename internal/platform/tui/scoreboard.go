package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	minWidthForSidebar = 84 // below this the boards are shown as tabs
	sidebarWidth       = 22
	maxGames           = 100
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		NextBoard: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/l", "next board")),
		PrevBoard: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/h", "prev board")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardEntry is one variant in the scoreboard with its recorded summary.
type boardEntry struct {
	variant registry.Variant
	stats   *storage.VariantStats // nil when the board was never played
}

// label is the board's size and goal, e.g. "4x4 to 2048".
func (b boardEntry) label() string {
	return fmt.Sprintf("%dx%d to %d", b.variant.Dimension, b.variant.Dimension, b.variant.Threshold)
}

// ScoreboardModel lists the best finished games per board variant.
type ScoreboardModel struct {
	boards    []boardEntry
	cursor    int
	store     *storage.Store // may be nil
	games     []storage.GameRecord
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	wonStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
)

// NewScoreboardModel creates a scoreboard showing the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	for _, v := range registry.List() {
		m.boards = append(m.boards, boardEntry{variant: v})
	}
	m.loadStats()
	m.table = m.newTable()
	m.loadGames()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// loadStats reads the per-board summaries shown in the sidebar.
func (m *ScoreboardModel) loadStats() {
	if m.store == nil {
		return
	}
	all, err := m.store.GetAllVariantStats()
	if err != nil {
		return
	}
	for i := range m.boards {
		m.boards[i].stats = all[m.boards[i].variant.ID]
	}
}

// loadGames reads the best games of the selected board into the table.
func (m *ScoreboardModel) loadGames() {
	m.games = nil
	if m.store != nil && len(m.boards) > 0 {
		if games, err := m.store.TopGames(m.boards[m.cursor].variant.ID, maxGames); err == nil {
			m.games = games
		}
	}

	threshold := 0
	if len(m.boards) > 0 {
		threshold = m.boards[m.cursor].variant.Threshold
	}
	wide := m.wide()

	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		tile := fmt.Sprintf("%d", g.MaxTile)
		if g.MaxTile >= threshold {
			tile += "*"
		}
		row := table.Row{fmt.Sprintf("#%d", i+1), fmt.Sprintf("%d", g.Score), tile, fmt.Sprintf("%d", g.Moves), resultLabel(g.Result)}
		if wide {
			player := g.Player
			if player == "" {
				player = "-"
			}
			row = append(row, player, g.CreatedAt.Format("Jan 02 15:04"))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// resultLabel shortens a stored session state for the table.
func resultLabel(result string) string {
	switch session.State(result) {
	case session.StateWon:
		return "won"
	case session.StateLost:
		return "lost"
	case session.StateAbandoned:
		return "quit"
	default:
		return result
	}
}

// newTable builds the games table. The wide layout adds player and date.
func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Tile", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Result", Width: 6},
	}
	if m.wide() {
		rest := m.width - sidebarWidth - 4 - 6 - 31 - 12
		columns = append(columns,
			table.Column{Title: "Player", Width: core.Clamp(rest, 6, 16)},
			table.Column{Title: "Date", Width: 12},
		)
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

// selectBoard moves the cursor by delta, wrapping around.
func (m *ScoreboardModel) selectBoard(delta int) {
	if len(m.boards) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.boards)) % len(m.boards)
	m.loadGames()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

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
		case key.Matches(msg, m.keys.NextBoard):
			m.selectBoard(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevBoard):
			m.selectBoard(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.loadGames()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.boards) > 0 {
		cur := m.boards[m.cursor]
		title = fmt.Sprintf("HIGH SCORES - %s (%s)", cur.variant.Title, cur.label())
	}
	b.WriteString(scoreTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", panelStyle.Render(m.renderGames())))
	} else {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(panelStyle.Render(m.renderGames()), m.width))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statsLine summarizes the recorded games of the selected board.
func (m ScoreboardModel) statsLine() string {
	if len(m.boards) == 0 || m.boards[m.cursor].stats == nil {
		return "not played yet"
	}
	s := m.boards[m.cursor].stats
	return fmt.Sprintf("%d games  %d won  best tile %d  avg %.0f  last %s",
		s.GamesCount, s.Wins, s.BestTile, s.AvgScore, s.LastPlayed.Format("Jan 02 15:04"))
}

// renderSidebar lists every board with its size, goal and best score.
func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Boards\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, entry := range m.boards {
		marker, style := "  ", lipgloss.NewStyle()
		if i == m.cursor {
			marker, style = "> ", activeStyle
		}
		sb.WriteString(style.Render(marker + truncate(entry.variant.Title, sidebarWidth-6)))
		sb.WriteString("\n")

		detail := entry.label()
		if entry.stats != nil {
			detail += fmt.Sprintf("  %d", entry.stats.HighScore)
		}
		sb.WriteString(dimStyle.Render("  " + truncate(detail, sidebarWidth-6)))
		sb.WriteString("\n")
	}

	return panelStyle.Width(sidebarWidth).Render(sb.String())
}

// renderTabs shows the boards as a single line of size tabs. When they do
// not fit, only the current board is shown between arrows.
func (m ScoreboardModel) renderTabs() string {
	if len(m.boards) == 0 {
		return ""
	}

	tabs := make([]string, len(m.boards))
	for i, entry := range m.boards {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(entry.variant.ID)
		} else {
			tabs[i] = dimStyle.Render(" " + entry.variant.ID + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.boards[m.cursor].variant.ID)
	}
	return line
}

// renderGames shows the table, or a hint when the board has no games yet.
func (m ScoreboardModel) renderGames() string {
	if len(m.games) == 0 {
		return dimStyle.Italic(true).Padding(2, 4).
			Render("No games recorded yet.\nReach the goal tile to top this board!")
	}

	var b strings.Builder
	b.WriteString(m.table.View())
	if m.hasWin() {
		b.WriteString("\n")
		b.WriteString(wonStyle.Render("* reached the goal tile"))
	}
	return b.String()
}

func (m ScoreboardModel) hasWin() bool {
	if len(m.boards) == 0 {
		return false
	}
	for _, g := range m.games {
		if g.MaxTile >= m.boards[m.cursor].variant.Threshold {
			return true
		}
	}
	return false
}

// truncate shortens s to n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if the user wants to go back to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

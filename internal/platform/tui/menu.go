package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/match3-arcade/internal/config"
	"github.com/vovakirdan/match3-arcade/internal/core"
	"github.com/vovakirdan/match3-arcade/internal/storage"
)

// BoardChoice is a starting board offered by the menu.
type BoardChoice struct {
	Name string
	Path string // Empty deals a random board
}

// MenuOptions configures the menu.
type MenuOptions struct {
	GameID     string
	Difficulty string        // Preselected preset
	Boards     []BoardChoice // Layouts besides the random board
}

const (
	menuPlay = iota
	menuDifficulty
	menuBoard
	menuScores
	menuQuit
	menuItemCount
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	keys   MenuKeyMap
	help   help.Model
	cursor int
	width  int
	height int
	config core.RuntimeConfig

	presets   []config.DifficultyPreset
	preset    int
	boards    []BoardChoice
	board     int
	highScore int

	start          bool
	openScoreboard bool
	quitting       bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) MenuModel {
	m := MenuModel{
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		presets: config.Presets(),
		boards:  append([]BoardChoice{{Name: "Random"}}, opts.Boards...),
	}
	m.help.Width = cfg.ScreenW

	want, err := config.ParseDifficulty(opts.Difficulty)
	if err != nil {
		want = config.DifficultyNormal
	}
	for i, p := range m.presets {
		if p == want {
			m.preset = i
		}
	}

	if store != nil {
		if high, err := store.HighScore(opts.GameID); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + menuItemCount - 1) % menuItemCount
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % menuItemCount
	case key.Matches(msg, m.keys.Left):
		m.cycle(-1)
	case key.Matches(msg, m.keys.Right):
		m.cycle(1)
	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case menuPlay:
			m.start = true
			return m, tea.Quit
		case menuDifficulty, menuBoard:
			m.cycle(1)
		case menuScores:
			m.openScoreboard = true
			return m, tea.Quit
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// cycle moves the option under the cursor by delta, wrapping around.
func (m *MenuModel) cycle(delta int) {
	switch m.cursor {
	case menuDifficulty:
		m.preset = wrap(m.preset+delta, len(m.presets))
	case menuBoard:
		m.board = wrap(m.board+delta, len(m.boards))
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("M A T C H - 3"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("High score: %d", m.highScore)), m.width))
	b.WriteString("\n\n")

	preset := m.presets[m.preset]
	items := [menuItemCount]string{
		menuPlay:       "Play",
		menuDifficulty: fmt.Sprintf("Difficulty: < %s >", preset),
		menuBoard:      fmt.Sprintf("Board: < %s >", m.boards[m.board].Name),
		menuScores:     "High Scores",
		menuQuit:       "Quit",
	}
	for i, item := range items {
		if i == m.cursor {
			b.WriteString(centerText(menuPickStyle.Render("> "+item), m.width))
		} else {
			b.WriteString(centerText("  "+item, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(preset.Describe()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Play            bool
	Difficulty      string
	LayoutPath      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result reports what the user chose.
func (m MenuModel) Result() MenuResult {
	return MenuResult{
		Play:            m.start,
		Difficulty:      string(m.presets[m.preset]),
		LayoutPath:      m.boards[m.board].Path,
		Config:          m.config,
		WantsScoreboard: m.openScoreboard,
		Quit:            m.quitting || !m.start && !m.openScoreboard,
	}
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg, opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

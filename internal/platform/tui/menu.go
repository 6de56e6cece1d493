package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// MenuChoice is the entry picked from the title menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

var menuEntries = []struct {
	choice MenuChoice
	label  string
}{
	{MenuChoicePlay, "Play"},
	{MenuChoiceScores, "High Scores"},
	{MenuChoiceQuit, "Quit"},
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	gameID     string
	cursor     int
	difficulty int // Index into config.Presets
	width      int
	height     int
	store      *storage.Store
	config     core.RuntimeConfig
	keys       MenuKeyMap
	help       help.Model
	embedded   bool
	chosen     MenuChoice
}

// NewMenuModel creates a menu for gameID with the given preset preselected.
func NewMenuModel(gameID string, store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		gameID: gameID,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		store:  store,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	for i, p := range config.Presets {
		if p == preset {
			m.difficulty = i
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

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.choose(MenuChoiceQuit)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		if m.difficulty > 0 {
			m.difficulty--
		}

	case key.Matches(msg, m.keys.Right):
		if m.difficulty < len(config.Presets)-1 {
			m.difficulty++
		}

	case key.Matches(msg, m.keys.Select):
		return m.choose(menuEntries[m.cursor].choice)
	}

	return m, nil
}

func (m MenuModel) choose(c MenuChoice) (tea.Model, tea.Cmd) {
	m.chosen = c
	if m.embedded {
		return m, nil
	}
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.chosen != MenuChoiceNone && !m.embedded {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle.Render("  E N D L E S S   R U N N E R  "), m.width))
	b.WriteString("\n\n")

	if m.store != nil {
		if best, err := m.store.HighScore(m.gameID); err == nil && best > 0 {
			b.WriteString(centerText(fmt.Sprintf("Best: %d", best), m.width))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	for i, e := range menuEntries {
		line := "  " + e.label
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + e.label)
		}
		b.WriteString(centerStyled(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	presets := make([]string, len(config.Presets))
	for i, p := range config.Presets {
		if i == m.difficulty {
			presets[i] = menuActiveStyle.Render("[" + string(p) + "]")
		} else {
			presets[i] = menuDimStyle.Render(" " + string(p) + " ")
		}
	}
	b.WriteString(centerStyled("Difficulty: "+strings.Join(presets, " "), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerStyled(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the picked entry, or MenuChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.difficulty]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers text that may contain ANSI styling.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(gameID string, store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(gameID, store, cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Chosen() == MenuChoiceNone {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice:     m.Chosen(),
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}, nil
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// noticeDuration is how long status notices stay on screen.
const noticeDuration = 2 * time.Second

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

const noticeColor = core.ColorOrange

// ModelOptions configure a game model.
type ModelOptions struct {
	Store   *storage.Store
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// Watcher and Reload enable hot reload: when the watched config file
	// changes, Reload builds a fresh game that replaces the running one.
	Watcher *config.Watcher
	Reload  func() (registry.Game, error)

	// Embedded models return to their host on Back instead of quitting.
	Embedded bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	log       *log.Logger
	keys      KeyMap
	help      help.Model
	holds     *HoldTracker
	pending   core.InputFrame // One-shot actions for the next tick
	gameState core.GameState
	shake     int

	watcher *config.Watcher
	reload  func() (registry.Game, error)

	notice      string
	noticeTicks int

	embedded   bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// configChangedMsg reports a change to the watched config file.
type configChangedMsg struct{ path string }

// configErrorMsg reports a watcher failure.
type configErrorMsg struct{ err error }

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts ModelOptions) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:     game,
		store:    opts.Store,
		config:   cfg,
		log:      logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		holds:    NewHoldTracker(cfg.TickRate),
		pending:  core.NewInputFrame(),
		watcher:  opts.Watcher,
		reload:   opts.Reload,
		embedded: opts.Embedded,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil && m.reload != nil {
		cmds = append(cmds, waitForConfig(m.watcher))
	}
	return tea.Batch(cmds...)
}

// waitForConfig blocks until the watcher reports a change or an error.
func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrorMsg{err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configChangedMsg:
		return m.handleReload(msg.path)

	case configErrorMsg:
		m.log.Warn("config watcher", "err", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.screenHeight())
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		m.holds.Press(core.ActionJump)
	case core.ActionDuck:
		m.holds.Press(core.ActionDuck)
	case core.ActionPause:
		if !m.gameState.GameOver {
			m.pending.Set(core.ActionPause)
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.pending.Set(core.ActionRestart)
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			if m.embedded {
				m.backToMenu = true
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}
		m.pending.Set(core.ActionPause)
	}

	return m, nil
}

// handleResize processes window resize events. The world is independent of
// the terminal size, so the run continues at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.screenHeight())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}
	if m.noticeTicks > 0 {
		m.noticeTicks--
	}

	if m.pending.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart(time.Now().UnixNano())
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.pending.Clone()
	m.holds.Apply(&frame)

	result := m.game.Step(frame)
	m.gameState = result.State
	m.shake = result.Shake

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.pending.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with the given seed.
func (m *Model) restart(seed int64) {
	m.config.Seed = seed
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.shake = 0
	m.scoreSaved = false
	m.holds.Reset()
	m.pending.Clear()
}

func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.RunResult{
		Score:    m.gameState.Score,
		Level:    m.gameState.Level,
		Duration: m.gameState.Elapsed,
	}
	if _, err := m.store.SaveScore(m.game.ID(), run); err != nil {
		// Best-effort save, game continues regardless
		m.log.Warn("save score", "game", m.game.ID(), "err", err)
	}
}

// handleReload swaps in a game built from the changed config.
func (m Model) handleReload(path string) (tea.Model, tea.Cmd) {
	next := waitForConfig(m.watcher)

	game, err := m.reload()
	if err != nil {
		m.log.Warn("config reload rejected", "path", path, "err", err)
		m.setNotice("config rejected")
		return m, next
	}

	m.log.Info("config reloaded", "path", path)
	m.game = game
	m.restart(m.config.Seed)
	m.setNotice("config reloaded")
	return m, next
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeTicks = int(noticeDuration / m.config.TickDuration())
}

// screenHeight is the terminal height left for the game above the help bar.
func (m Model) screenHeight() int {
	rows := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
	}
	return max(m.config.ScreenH-rows, 0)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
	m.setNotice("screenshot saved")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	if m.noticeTicks > 0 && m.screen.Height() > 1 {
		text := " " + m.notice + " "
		m.screen.DrawTextColored(m.screen.Width()-len(text)-1, m.screen.Height()-1, text, noticeColor)
	}

	return RenderScreen(m.screen, m.shake) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with a model for the given game.
func Run(game registry.Game, opts ModelOptions) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

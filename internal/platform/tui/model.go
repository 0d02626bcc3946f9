package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Options configure the terminal surface. Zero values are usable.
type Options struct {
	Sound         core.EventSink // Nil plays nothing
	Logger        *log.Logger    // Nil logs nothing
	ScreenshotDir string         // Defaults to ~/.flappy/screenshots
	MaxDelta      float64        // Clamp ceiling for one frame, defaults to core.DefaultMaxDelta
}

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	clock      *core.FrameClock
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.MaxDelta <= 0 {
		opts.MaxDelta = core.DefaultMaxDelta
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		clock:      core.NewFrameClock(opts.MaxDelta),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keys.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Add(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionScreenshot:
		m.saveScreenshot()
	case action != core.ActionNone:
		m.inputFrame.Add(action)
	}
	return m, nil
}

// handleResize processes window resize events. The session continues;
// the renderer letterboxes the world into the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick applies buffered activations and advances the game by the real
// time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for i := 0; i < m.inputFrame.Count(core.ActionFlap); i++ {
		m.game.Activate()
	}

	result := m.game.Tick(m.clock.Sample(now))
	m.gameState = result.State
	m.dispatch(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// dispatch forwards events to the sound sink and the log.
func (m Model) dispatch(events []core.Event) {
	if len(events) == 0 {
		return
	}
	if m.opts.Sound != nil {
		m.opts.Sound.HandleEvents(events)
	}
	if m.opts.Logger == nil {
		return
	}
	for _, e := range events {
		switch e.Kind {
		case core.EventFlap, core.EventScore:
			// Too frequent to log
		default:
			m.opts.Logger.Debug("game event", "game", m.game.ID(), "event", e.Kind, "value", e.Value)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logWarn("cannot create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logWarn("cannot save screenshot", "path", path, "error", err)
		return
	}
	if m.opts.Logger != nil {
		m.opts.Logger.Info("screenshot saved", "path", path)
	}
}

func (m Model) logWarn(msg string, keyvals ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, keyvals...)
	}
}

// State returns the game state after the most recent tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game and returns the
// state it ended in.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses flap
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}

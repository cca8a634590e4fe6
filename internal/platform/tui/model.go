package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
	"github.com/vovakirdan/snake-tui/internal/storage"
)

// Model is the Bubble Tea model for one game session. It owns the world,
// the tick gate, and the screen buffer; all mutation happens on the
// Bubble Tea update goroutine, strictly sequentially.
type Model struct {
	world      *game.World
	interval   *core.Interval
	screen     *core.Screen
	store      *storage.Store
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	frame      string
	quitting   bool
	scoreSaved bool
}

// NewModel creates a model for the given runtime configuration.
// A zero seed is replaced with a time-based one.
func NewModel(cfg core.RuntimeConfig, store *storage.Store) Model {
	var rng *game.LCG
	if cfg.Seed == 0 {
		rng = game.NewLCGFromTime()
	} else {
		rng = game.NewLCG(cfg.Seed)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		world:    game.NewWorld(rng, cfg.FieldSize),
		interval: core.NewInterval(cfg.TicksPerSecond),
		// Bottom screen row is reserved for the help footer.
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		store:  store,
		keys:   DefaultKeyMap(),
		help:   h,
		config: cfg,
	}
	m.refresh()
	return m
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return wakeCmd(time.Now())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case PollMsg:
		return m.handlePoll()
	}

	return m, nil
}

// handleKey processes keyboard input. Direction keys are forwarded to
// the world immediately; the world buffers them last-write-wins until
// the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.world.Terminated() {
			return m.restart()
		}

	default:
		if !m.world.Terminated() {
			m.world.HandleInput(m.keys.MapKey(msg))
		}
	}

	return m, nil
}

// restart begins a fresh session with a new time-based seed and re-arms
// the poll loop.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.world = game.NewWorld(game.NewLCGFromTime(), m.config.FieldSize)
	m.interval = core.NewInterval(m.config.TicksPerSecond)
	m.scoreSaved = false
	m.refresh()
	return m, wakeCmd(time.Now())
}

// handleResize processes window resize events. The world is untouched;
// only the view adapts.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	m.refresh()
	return m, nil
}

// handlePoll asks the tick gate whether a simulation step is due. When
// it is not, the loop sleeps until the gate's wake time. When it is, the
// world advances one tick; on termination the loop stops issuing ticks
// until a restart.
func (m Model) handlePoll() (tea.Model, tea.Cmd) {
	if m.world.Terminated() {
		return m, nil
	}

	due, wakeAt := m.interval.Poll()
	if !due {
		return m, wakeCmd(wakeAt)
	}

	redraw, terminated := m.world.Tick()
	if redraw {
		m.refresh()
	}
	if terminated {
		m.saveScore()
		return m, nil
	}

	// Re-poll for the next wake time; immediately after a fired tick the
	// gate reports not-due with one full period remaining.
	_, wakeAt = m.interval.Poll()
	return m, wakeCmd(wakeAt)
}

// saveScore records the final score once per session. Best effort: the
// game continues regardless of storage errors.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.world.Score() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveScore(m.world.Score())
	m.scoreSaved = true
}

// refresh redraws the world into the screen buffer and caches the styled
// frame returned by View.
func (m *Model) refresh() {
	DrawWorld(m.screen, m.world)
	m.frame = RenderScreen(m.screen)
}

// View renders the cached frame plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame + "\n" + m.help.View(m.keys)
}

// Run starts a Bubble Tea program for one local game session.
func Run(cfg core.RuntimeConfig, store *storage.Store) error {
	p := tea.NewProgram(
		NewModel(cfg, store),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

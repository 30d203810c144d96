package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paddlegames/tui-pong/internal/config"
	"github.com/paddlegames/tui-pong/internal/core"
	"github.com/paddlegames/tui-pong/internal/pong"
	"github.com/paddlegames/tui-pong/internal/storage"
)

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session  *pong.Session
	renderer *Renderer
	store    *storage.Store
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model

	frame      *core.Frame
	input      core.InputFrame
	hold       *holdTracker
	status     pong.Status
	matchStart time.Time
	matchSaved bool
	quitting   bool
}

// NewModel creates a model for a fresh session.
func NewModel(gameCfg config.PongConfig, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		session:  pong.NewSession(gameCfg, cfg.Seed),
		renderer: NewRenderer(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		frame:    core.NewFrame(gameCfg.Field.Width, gameCfg.Field.Height),
		input:    core.NewInputFrame(),
		hold:     newHoldTracker(),
		status:   pong.Status{MenuActive: true},
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

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.renderer.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records input edges for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg, m.status.MenuActive)
	if action == core.ActionNone {
		return m, nil
	}

	if isMovement(action) {
		// Key repeats refresh the hold; only the first event is a press edge
		if m.hold.KeyDown(action, time.Now()) {
			m.input.Press(action)
		}
		return m, nil
	}

	m.input.Press(action)
	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Expire(time.Now(), &m.input)

	wasMenu := m.status.MenuActive
	m.status = m.session.Step(1.0/float64(m.config.TickRate), m.input)
	m.input.Clear()

	if m.status.Quitting {
		m.quitting = true
		return m, tea.Quit
	}

	// A match just started
	if wasMenu && !m.status.MenuActive {
		m.matchStart = time.Now()
		m.matchSaved = false
		m.hold.ReleaseAll(&m.input)
	}

	// A match just finished
	if m.status.Winner != 0 && !m.matchSaved {
		m.saveMatch()
		m.matchSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveMatch persists the finished match, best effort.
func (m *Model) saveMatch() {
	if m.store == nil {
		return
	}

	result := storage.MatchResult{
		Mode:         m.session.Mode().String(),
		ScoreL:       m.status.ScoreL,
		ScoreR:       m.status.ScoreR,
		Winner:       m.status.Winner,
		DurationSecs: int(time.Since(m.matchStart).Seconds()),
	}
	if m.session.Mode() == pong.ModeOnePlayer {
		result.Difficulty = m.session.Difficulty().String()
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveMatch(result)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.frame)
	return m.renderer.Render(m.frame, m.help.View(m.keys))
}

// Run starts the Bubble Tea program with a fresh model.
func Run(gameCfg config.PongConfig, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(gameCfg, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RunWithPreset starts the program with the menu preselecting a mode and
// CPU difficulty.
func RunWithPreset(gameCfg config.PongConfig, store *storage.Store, cfg core.RuntimeConfig, mode pong.Mode, diff pong.Difficulty) error {
	model := NewModel(gameCfg, store, cfg)
	model.session.SetMode(mode)
	model.session.SetDifficulty(diff)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

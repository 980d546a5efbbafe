package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sidescroller/internal/audio"
	"github.com/vovakirdan/tui-sidescroller/internal/core"
	"github.com/vovakirdan/tui-sidescroller/internal/logging"
	"github.com/vovakirdan/tui-sidescroller/internal/storage"
)

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
	HighScore(gameID string) (int, error)
}

// Options configures a Model. Zero values fall back to silent, unrecorded play.
type Options struct {
	Runtime       core.RuntimeConfig
	Recorder      RunRecorder
	Sink          audio.Sink
	Logger        *log.Logger
	Player        string
	Hold          time.Duration
	Screenshots   bool // Ctrl+S writes files; keep off for remote sessions
	ScreenshotDir string
}

// statusTicks is how long a status line stays on screen.
const statusTicks = 90

// Model is the Bubble Tea model that drives a core.Game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	recorder   RunRecorder
	sink       audio.Sink
	logger     *log.Logger
	player     string
	shots      bool
	shotDir    string
	config     core.RuntimeConfig
	keys       *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	statusLeft int
	quitting   bool
	runSaved   bool // whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Hold <= 0 {
		opts.Hold = DefaultHold
	}
	if opts.Sink == nil {
		opts.Sink = audio.Null{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir()
	}

	game.Reset(cfg)
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:   opts.Recorder,
		sink:       opts.Sink,
		logger:     opts.Logger,
		player:     opts.Player,
		shots:      opts.Screenshots,
		shotDir:    opts.ScreenshotDir,
		config:     cfg,
		keys:       NewKeyMapper(),
		hold:       NewHoldTracker(HoldTicks(opts.Hold, cfg.TickRate)),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "tick_rate", m.config.TickRate, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
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
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if m.shots {
			m.saveScreenshot(time.Now())
		}
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "level", m.gameState.Level)
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	switch {
	case Held(action):
		m.hold.Press(action)
	case Debounced(action):
		if m.hold.Trigger(action) {
			m.inputFrame.Set(action)
		}
	default:
		m.inputFrame.Set(action)
	}
	m.logger.Debug("key", "key", msg.String(), "action", action, "frame", m.inputFrame.Len())
	return m, nil
}

// handleResize keeps the buffer in sync with the terminal. Progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.sink.Play(ev.Kind)
		switch ev.Kind {
		case core.EventLevelClear, core.EventGameOver, core.EventRestart, core.EventLifeLost:
			m.logger.Info(ev.Kind.String(), "level", ev.Level, "score", result.State.Score, "lives", result.State.Lives)
		default:
			m.logger.Debug("event", "kind", ev.Kind, "level", ev.Level)
		}
	}

	if !m.gameState.Paused && result.State.Paused {
		m.hold.Reset()
	}
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.runSaved = false
	} else if !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	if m.statusLeft > 0 {
		m.statusLeft--
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) recordRun() {
	if m.recorder == nil || m.gameState.Score <= 0 {
		return
	}
	best, bestErr := m.recorder.HighScore(m.game.ID())
	id, err := m.recorder.SaveRun(storage.Run{
		GameID:  m.game.ID(),
		Player:  m.player,
		Score:   m.gameState.Score,
		Level:   m.gameState.Level,
		Outcome: string(m.gameState.Outcome),
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Error("save run", "err", err)
		return
	}
	m.logger.Info("run saved", "id", id, "score", m.gameState.Score, "outcome", m.gameState.Outcome)

	if bestErr == nil && m.gameState.Score > best {
		m.logger.Info("new high score", "score", m.gameState.Score, "previous", best)
		m.setStatus(fmt.Sprintf("New high score: %d", m.gameState.Score))
	}
}

// saveScreenshot writes the current screen as text and PNG.
func (m *Model) saveScreenshot(now time.Time) {
	m.game.Render(m.screen)
	shot, err := SaveScreenshot(m.screen, m.shotDir, m.game.ID(), now)
	if err != nil {
		m.logger.Error("screenshot", "err", err)
		m.setStatus("Screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "text", shot.Text, "png", shot.PNG)
	m.setStatus("Saved " + shot.PNG)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.statusLeft > 0 && m.screen.Height() > 0 {
		m.screen.DrawTextColored(0, m.screen.Height()-1, m.status, core.ColorGray)
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game. The caller owns the
// recorder, sink and logger and closes them.
func Run(game core.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

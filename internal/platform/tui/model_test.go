package tui

import (
	"errors"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sidescroller/internal/audio"
	"github.com/vovakirdan/tui-sidescroller/internal/core"
	"github.com/vovakirdan/tui-sidescroller/internal/storage"
)

// scriptedGame replays a fixed sequence of step results.
type scriptedGame struct {
	steps   []core.StepResult
	inputs  []core.InputFrame
	resets  int
	resized [2]int
	state   core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{InMenu: true}
}

func (g *scriptedGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if len(g.steps) == 0 {
		return core.StepResult{State: g.state}
	}
	r := g.steps[0]
	g.steps = g.steps[1:]
	g.state = r.State
	return r
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.state }

type recorderStub struct {
	runs []storage.Run
	err  error
}

func (r *recorderStub) HighScore(string) (int, error) {
	best := 0
	for _, run := range r.runs {
		best = max(best, run.Score)
	}
	return best, nil
}

func (r *recorderStub) SaveRun(run storage.Run) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.runs = append(r.runs, run)
	return int64(len(r.runs)), nil
}

type sinkStub struct {
	played []core.EventKind
}

func (s *sinkStub) Play(k core.EventKind) { s.played = append(s.played, k) }
func (s *sinkStub) Close() error          { return nil }

var _ audio.Sink = (*sinkStub)(nil)

func newTestModel(g core.Game, opts Options) Model {
	opts.Runtime = core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	opts.ScreenshotDir = "unused"
	return NewModel(g, opts)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, TickMsg(time.Now()))
}

func TestModelResetsGameOnCreate(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, Options{})
	assert.Equal(t, 1, g.resets)
	assert.True(t, m.State().InMenu)
}

func TestModelOneShotActionsLastOneTick(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, Options{})

	m = send(t, m, runeKey("f"))
	m = tick(t, m)
	m = tick(t, m)

	require.Len(t, g.inputs, 2)
	assert.True(t, g.inputs[0].Has(core.ActionShoot))
	assert.False(t, g.inputs[1].Has(core.ActionShoot))
}

func TestModelShootIgnoresAutoRepeat(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, Options{Hold: 50 * time.Millisecond})

	// Auto-repeats arrive every tick while the key is down.
	for range 5 {
		m = send(t, m, runeKey("f"))
		m = tick(t, m)
	}
	// Released for longer than the 3-tick window.
	for range 3 {
		m = tick(t, m)
	}
	m = send(t, m, runeKey("f"))
	m = tick(t, m)

	require.Len(t, g.inputs, 9)
	shots := 0
	for _, in := range g.inputs {
		if in.Has(core.ActionShoot) {
			shots++
		}
	}
	assert.Equal(t, 2, shots)
	assert.True(t, g.inputs[0].Has(core.ActionShoot))
	assert.True(t, g.inputs[8].Has(core.ActionShoot))
}

func TestModelHeldActionsPersist(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, Options{Hold: 50 * time.Millisecond})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for range 4 {
		m = tick(t, m)
	}

	// 50ms at 60 ticks/s is 3 ticks.
	require.Len(t, g.inputs, 4)
	assert.True(t, g.inputs[0].Has(core.ActionRight))
	assert.True(t, g.inputs[2].Has(core.ActionRight))
	assert.False(t, g.inputs[3].Has(core.ActionRight))
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&scriptedGame{}, Options{})
	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}

func TestModelPlaysEvents(t *testing.T) {
	g := &scriptedGame{steps: []core.StepResult{{
		Events: []core.Event{{Kind: core.EventJump, Level: 1}, {Kind: core.EventShoot, Level: 1}},
	}}}
	sink := &sinkStub{}
	m := newTestModel(g, Options{Sink: sink})

	tick(t, m)
	assert.Equal(t, []core.EventKind{core.EventJump, core.EventShoot}, sink.played)
}

func TestModelRecordsRunOnce(t *testing.T) {
	over := core.GameState{Score: 300, Level: 2, GameOver: true, Outcome: core.OutcomeLost}
	g := &scriptedGame{steps: []core.StepResult{
		{State: core.GameState{Score: 300, Level: 2}},
		{State: over, Events: []core.Event{{Kind: core.EventGameOver, Level: 2}}},
		{State: over},
		{State: over},
	}}
	rec := &recorderStub{}
	m := newTestModel(g, Options{Recorder: rec, Player: "ada"})

	for range 4 {
		m = tick(t, m)
	}

	require.Len(t, rec.runs, 1)
	run := rec.runs[0]
	assert.Equal(t, "scripted", run.GameID)
	assert.Equal(t, "ada", run.Player)
	assert.Equal(t, 300, run.Score)
	assert.Equal(t, 2, run.Level)
	assert.Equal(t, "lost", run.Outcome)
}

func TestModelRecordsAgainAfterRestart(t *testing.T) {
	over := core.GameState{Score: 100, Level: 1, GameOver: true, Outcome: core.OutcomeLost}
	g := &scriptedGame{steps: []core.StepResult{
		{State: over},
		{State: core.GameState{Level: 1}},
		{State: over},
	}}
	rec := &recorderStub{}
	m := newTestModel(g, Options{Recorder: rec})

	for range 3 {
		m = tick(t, m)
	}
	assert.Len(t, rec.runs, 2)
}

func TestModelSkipsZeroScore(t *testing.T) {
	g := &scriptedGame{steps: []core.StepResult{
		{State: core.GameState{GameOver: true, Outcome: core.OutcomeLost}},
	}}
	rec := &recorderStub{}
	m := newTestModel(g, Options{Recorder: rec})

	tick(t, m)
	assert.Empty(t, rec.runs)
}

func TestModelSaveErrorDoesNotStopGame(t *testing.T) {
	g := &scriptedGame{steps: []core.StepResult{
		{State: core.GameState{Score: 10, GameOver: true, Outcome: core.OutcomeLost}},
	}}
	rec := &recorderStub{err: errors.New("disk full")}
	m := newTestModel(g, Options{Recorder: rec})

	next, cmd := m.Update(TickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.True(t, next.(Model).State().GameOver)
}

func TestModelResizeKeepsProgress(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, Options{})

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, [2]int{100, 30}, g.resized)
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 100, m.screen.Width())
}

func TestModelView(t *testing.T) {
	m := newTestModel(&scriptedGame{}, Options{})
	assert.Contains(t, m.View(), "scripted")
}

func TestModelScreenshot(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, Options{Screenshots: true})
	m.shotDir = t.TempDir()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Contains(t, m.status, "Saved")
	assert.Contains(t, m.View(), "Saved")
}

func TestModelScreenshotDisabled(t *testing.T) {
	m := newTestModel(&scriptedGame{}, Options{})
	dir := t.TempDir()
	m.shotDir = dir

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Empty(t, m.status)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestModelAnnouncesHighScore(t *testing.T) {
	over := func(score int) core.GameState {
		return core.GameState{Score: score, Level: 1, GameOver: true, Outcome: core.OutcomeLost}
	}
	g := &scriptedGame{steps: []core.StepResult{
		{State: over(500)},
		{State: core.GameState{Level: 1}},
		{State: over(200)},
	}}
	rec := &recorderStub{}
	m := newTestModel(g, Options{Recorder: rec})

	m = tick(t, m)
	assert.Equal(t, "New high score: 500", m.status)

	m.status, m.statusLeft = "", 0
	m = tick(t, m)
	m = tick(t, m)
	assert.Len(t, rec.runs, 2)
	assert.Empty(t, m.status, "200 does not beat 500")
}

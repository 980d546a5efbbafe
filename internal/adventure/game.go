// Package adventure implements the side-scrolling platformer: a player
// crossing three levels of patrolling enemies, shooting them down and
// picking up health and extra lives.
//
// The package is pure simulation. Input arrives as one core.InputFrame
// per tick, sound cues and lifecycle changes leave as core.Events, and
// drawing goes to a core.Screen.
package adventure

import (
	"github.com/vovakirdan/tui-sidescroller/internal/config"
	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

// ID is the stable identifier used for score storage.
const ID = "adventure"

// Title is the display name shown in menus and score tables.
const Title = "Side-Scrolling Adventure"

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game implements core.Game for the adventure.
type Game struct {
	cfg      config.Config
	runtime  core.RuntimeConfig
	catalog  *Catalog
	resolver Resolver

	world    World
	camera   *Camera
	parallax *Parallax

	phase   Phase
	paused  bool
	level   int
	outcome core.Outcome
	hurt    int // ticks left on the damage flash
	events  []core.Event
	stars   []string // far background layer, scattered from the runtime seed
}

// New creates a game using cfg. cfg should have passed Validate.
func New(cfg config.Config) *Game {
	g := &Game{
		cfg:      cfg,
		catalog:  NewCatalog(cfg),
		resolver: NewResolver(cfg),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Catalog returns the level catalog.
func (g *Game) Catalog() *Catalog {
	return g.catalog
}

// Reset returns to the main menu with a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	viewW, viewH := g.viewSize(runtime.ScreenW, runtime.ScreenH)
	g.camera = NewCamera(g.cfg.Camera, viewW, viewH)
	g.parallax = NewParallax(g.cfg.Parallax.LayerSpeeds, viewW)
	g.stars = starField(runtime.Seed)
	g.newSession()
	g.phase = PhaseMenu
}

// Resize adapts the view to a terminal of w x h cells.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	viewW, viewH := g.viewSize(w, h)
	g.camera.Resize(viewW, viewH)
	g.parallax.Resize(viewW)
}

// viewSize converts a cell grid to world units, falling back to the
// configured viewport when the grid size is unknown.
func (g *Game) viewSize(w, h int) (float64, float64) {
	viewW, viewH := g.cfg.View.Width, g.cfg.View.Height
	if w > 0 {
		viewW = float64(w) * g.cfg.View.CellWidth
	}
	if h > 0 {
		viewH = float64(h) * g.cfg.View.CellHeight
	}
	return viewW, viewH
}

// newSession builds a fresh player and level 1 without changing phase.
func (g *Game) newSession() {
	g.world = World{Player: NewPlayer(g.cfg.Player)}
	g.level = 1
	g.outcome = core.OutcomeNone
	g.paused = false
	g.hurt = 0
	g.camera.Offset = core.Vec{}
	g.parallax.Reset()
	g.world.Enemies, g.world.Collectibles, _ = g.catalog.Load(g.level)
}

func (g *Game) startRun() {
	g.newSession()
	g.phase = PhasePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch g.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) {
			g.startRun()
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.startRun()
			g.emit(core.EventRestart)
		}
	case PhasePlaying:
		switch {
		case in.Has(core.ActionRestart):
			g.startRun()
			g.emit(core.EventRestart)
		case in.Has(core.ActionPause):
			g.paused = !g.paused
		case !g.paused:
			g.update(in)
		}
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// update runs one playing tick: shoot, player, projectiles, enemies,
// background and camera, collisions, level check.
func (g *Game) update(in core.InputFrame) {
	if g.hurt > 0 {
		g.hurt--
	}
	w := &g.world

	if in.Has(core.ActionShoot) {
		w.Projectiles = append(w.Projectiles, w.Player.Shoot(g.cfg.Projectile))
		g.emit(core.EventShoot)
	}

	if w.Player.Update(in) {
		g.emit(core.EventJump)
	}

	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.Update()
		if !p.Offscreen(g.camera, g.cfg.Projectile.OffscreenMargin) {
			kept = append(kept, p)
		}
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept

	for _, e := range w.Enemies {
		e.Update(w.Player.Pos.X)
	}

	g.parallax.Update(w.Player.Vel.X)
	g.camera.Follow(w.Player.Pos)

	contact := g.resolver.Resolve(w)
	g.record(contact)
	if contact.PlayerDead {
		g.finish(core.OutcomeLost)
		return
	}

	if len(w.Enemies) == 0 {
		g.advanceLevel()
	}
}

func (g *Game) record(c Contact) {
	if c.DamageTaken > 0 {
		g.hurt = 6
	}
	for range c.Hits {
		g.emit(core.EventEnemyHit)
	}
	for range c.Defeated {
		g.emit(core.EventEnemyDefeated)
	}
	for range c.LivesLost {
		g.emit(core.EventLifeLost)
	}
	for range c.Pickups {
		g.emit(core.EventCollect)
	}
}

// advanceLevel moves to the next level, keeping the player, score and
// shots in flight. Clearing the last level completes the run.
func (g *Game) advanceLevel() {
	g.emit(core.EventLevelClear)
	if g.level >= g.catalog.Last() {
		g.finish(core.OutcomeCompleted)
		return
	}
	g.level++
	g.world.Enemies, g.world.Collectibles, _ = g.catalog.Load(g.level)
}

func (g *Game) finish(outcome core.Outcome) {
	g.phase = PhaseGameOver
	g.outcome = outcome
	g.paused = false
	g.emit(core.EventGameOver)
}

func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{Kind: kind, Level: g.level})
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Level returns the current level number.
func (g *Game) Level() int {
	return g.level
}

// World returns the live entities. Callers must not keep it across ticks.
func (g *Game) World() *World {
	return &g.world
}

// Camera returns the view camera.
func (g *Game) Camera() *Camera {
	return g.camera
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	p := g.world.Player
	return core.GameState{
		Score:    g.world.Score,
		Level:    g.level,
		Lives:    p.Lives,
		Health:   p.Health,
		InMenu:   g.phase == PhaseMenu,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
		Outcome:  g.outcome,
	}
}

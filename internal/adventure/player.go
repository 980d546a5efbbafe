package adventure

import (
	"github.com/vovakirdan/tui-sidescroller/internal/config"
	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

// Player is the controllable character. Pos is the top-left corner of its
// body; y grows downward and the body rests on cfg.FloorY.
type Player struct {
	Pos          core.Vec
	Vel          core.Vec
	Size         core.Vec
	Jumping      bool
	Running      bool
	FacingRight  bool
	Health       int
	Lives        int
	Frame        int
	FrameCounter int

	cfg config.PlayerConfig
}

// NewPlayer builds a fresh player at the configured start position.
func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{
		Pos:         core.Vec{X: cfg.StartX, Y: cfg.StartY},
		Size:        core.Vec{X: cfg.Width, Y: cfg.Height},
		FacingRight: true,
		Health:      cfg.MaxHealth,
		Lives:       cfg.Lives,
		cfg:         cfg,
	}
}

// Rect returns the player's body in world units.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.Pos.X, p.Pos.Y, p.Size.X, p.Size.Y)
}

// Center returns the middle of the body, where shots spawn.
func (p *Player) Center() core.Vec {
	return p.Rect().Center()
}

// Update applies one tick of held input and physics. It reports whether
// the player left the ground this tick.
func (p *Player) Update(in core.InputFrame) (jumped bool) {
	switch {
	case in.Has(core.ActionRight):
		p.Vel.X += p.cfg.Acceleration
		p.Running = true
		p.FacingRight = true
	case in.Has(core.ActionLeft):
		p.Vel.X -= p.cfg.Acceleration
		p.Running = true
		p.FacingRight = false
	default:
		p.Vel.X *= p.cfg.Deceleration
		p.Running = false
	}
	p.Vel.X = core.ClampF(p.Vel.X, -p.cfg.MaxSpeed, p.cfg.MaxSpeed)

	if !p.Jumping && in.Has(core.ActionJump) {
		p.Jumping = true
		p.Vel.Y = p.cfg.JumpPower
		jumped = true
	}

	p.Vel.Y += p.cfg.Gravity
	p.Pos = p.Pos.Add(p.Vel)

	if p.Pos.Y >= p.cfg.FloorY {
		p.Pos.Y = p.cfg.FloorY
		p.Vel.Y = 0
		p.Jumping = false
	}

	p.animate()
	return jumped
}

func (p *Player) animate() {
	if !p.Running {
		p.Frame = 0
		return
	}
	p.FrameCounter++
	if p.FrameCounter >= p.cfg.AnimCadence {
		p.Frame = (p.Frame + 1) % p.cfg.AnimFrames
		p.FrameCounter = 0
	}
}

// Shoot spawns a projectile at the player's center heading the way the
// player faces.
func (p *Player) Shoot(cfg config.ProjectileConfig) *Projectile {
	dir := 1.0
	if !p.FacingRight {
		dir = -1
	}
	return NewProjectile(p.Center(), dir, cfg)
}

// Hurt removes n health. When health runs out a life is lost and health
// refills. It reports whether a life was lost.
func (p *Player) Hurt(n int) (lifeLost bool) {
	p.Health = max(0, p.Health-n)
	if p.Health > 0 {
		return false
	}
	p.Lives = max(0, p.Lives-1)
	p.Health = p.cfg.MaxHealth
	return true
}

// Heal restores n health, capped at the maximum.
func (p *Player) Heal(n int) {
	p.Health = min(p.cfg.MaxHealth, p.Health+n)
}

// Dead reports whether every life is spent.
func (p *Player) Dead() bool {
	return p.Lives <= 0
}

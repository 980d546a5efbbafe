package adventure

import (
	"math"

	"github.com/vovakirdan/tui-sidescroller/internal/config"
	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

// Enemy is a patrolling foe. Standard enemies and bosses differ only in
// the parameters they were built from; Update is shared.
type Enemy struct {
	Variant    Variant
	Pos        core.Vec // top-left corner
	Size       core.Vec
	Speed      float64 // magnitude, units per tick
	Dir        float64 // patrol direction, +1 or -1
	ChaseRange float64
	PatrolMin  float64
	PatrolMax  float64
	Health     int
	MaxHealth  int
}

// NewEnemy places an enemy of the given variant with its top-left corner
// at (x, y). It patrols x ± cfg.PatrolRadius, starting to the right.
func NewEnemy(v Variant, x, y float64, cfg config.EnemyConfig) *Enemy {
	return &Enemy{
		Variant:    v,
		Pos:        core.Vec{X: x, Y: y},
		Size:       core.Vec{X: cfg.Width, Y: cfg.Height},
		Speed:      math.Abs(cfg.Speed),
		Dir:        1,
		ChaseRange: cfg.ChaseRange,
		PatrolMin:  x - cfg.PatrolRadius,
		PatrolMax:  x + cfg.PatrolRadius,
		Health:     cfg.Health,
		MaxHealth:  cfg.Health,
	}
}

// Rect returns the enemy's body in world units.
func (e *Enemy) Rect() core.RectF {
	return core.NewRectF(e.Pos.X, e.Pos.Y, e.Size.X, e.Size.Y)
}

// Chasing reports whether a player at playerX is within chase range.
func (e *Enemy) Chasing(playerX float64) bool {
	return math.Abs(playerX-e.Pos.X) < e.ChaseRange
}

// Update advances the enemy one tick toward a player whose left edge is at
// playerX. Within chase range it steps toward the player without passing
// them; otherwise it patrols, turning around on reaching a bound. An enemy
// left outside its range by a chase never walks further out.
func (e *Enemy) Update(playerX float64) {
	if e.Chasing(playerX) {
		dx := playerX - e.Pos.X
		if dx == 0 {
			return
		}
		e.Dir = core.Sign(dx)
		e.Pos.X += e.Dir * math.Min(e.Speed, math.Abs(dx))
		return
	}

	next := e.Pos.X + e.Dir*e.Speed
	switch {
	case e.Dir > 0 && next >= e.PatrolMax:
		next = math.Max(e.Pos.X, e.PatrolMax)
		e.Dir = -1
	case e.Dir < 0 && next <= e.PatrolMin:
		next = math.Min(e.Pos.X, e.PatrolMin)
		e.Dir = 1
	}
	e.Pos.X = next
}

// Damage removes n health and reports whether the enemy is destroyed.
func (e *Enemy) Damage(n int) (destroyed bool) {
	e.Health = max(0, e.Health-n)
	return e.Health <= 0
}

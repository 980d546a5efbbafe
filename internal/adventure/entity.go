package adventure

import (
	"fmt"

	"github.com/vovakirdan/tui-sidescroller/internal/config"
	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

// Variant selects the parameter set an Enemy was built from.
type Variant int

const (
	VariantStandard Variant = iota
	VariantBoss
)

// String returns the catalog name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return config.EnemyStandard
	case VariantBoss:
		return config.EnemyBoss
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps a catalog kind onto a Variant.
func ParseVariant(kind string) (Variant, bool) {
	switch kind {
	case config.EnemyStandard:
		return VariantStandard, true
	case config.EnemyBoss:
		return VariantBoss, true
	}
	return 0, false
}

// CollectibleKind is the effect a pickup applies.
type CollectibleKind int

const (
	KindHealth CollectibleKind = iota
	KindExtraLife
)

// String returns the catalog name of the kind.
func (k CollectibleKind) String() string {
	switch k {
	case KindHealth:
		return config.CollectibleHealth
	case KindExtraLife:
		return config.CollectibleExtraLife
	default:
		return fmt.Sprintf("CollectibleKind(%d)", int(k))
	}
}

// ParseCollectibleKind maps a catalog kind onto a CollectibleKind.
func ParseCollectibleKind(kind string) (CollectibleKind, bool) {
	switch kind {
	case config.CollectibleHealth:
		return KindHealth, true
	case config.CollectibleExtraLife:
		return KindExtraLife, true
	}
	return 0, false
}

// Projectile is a shot travelling horizontally. Pos is its center.
type Projectile struct {
	Pos    core.Vec
	SpeedX float64
	Size   core.Vec
}

// NewProjectile spawns a shot centered on at, moving in dir (+1 or -1).
func NewProjectile(at core.Vec, dir float64, cfg config.ProjectileConfig) *Projectile {
	return &Projectile{
		Pos:    at,
		SpeedX: cfg.Speed * dir,
		Size:   core.Vec{X: cfg.Width, Y: cfg.Height},
	}
}

// Rect returns the world rectangle of the shot.
func (p *Projectile) Rect() core.RectF {
	return core.RectAround(p.Pos, p.Size.X, p.Size.Y)
}

// Update moves the shot one tick.
func (p *Projectile) Update() {
	p.Pos.X += p.SpeedX
}

// Offscreen reports whether the shot has left the view by more than margin.
func (p *Projectile) Offscreen(cam *Camera, margin float64) bool {
	x := cam.Apply(p.Rect()).X
	return x > cam.ViewW+margin || x < -margin
}

// Collectible is a pickup placed by the level catalog. Pos is its center.
type Collectible struct {
	Pos  core.Vec
	Kind CollectibleKind
	Size core.Vec
}

// Rect returns the world rectangle of the pickup.
func (c *Collectible) Rect() core.RectF {
	return core.RectAround(c.Pos, c.Size.X, c.Size.Y)
}

// World holds the mutable entities of one run.
type World struct {
	Player       *Player
	Enemies      []*Enemy
	Projectiles  []*Projectile
	Collectibles []*Collectible
	Score        int
}

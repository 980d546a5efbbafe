package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// Validate reports every problem found in c, joined into one error.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, invalid(format, args...))
		}
	}

	check(c.View.CellWidth > 0 && c.View.CellHeight > 0, "view cell size must be positive")
	check(c.View.Width > 0 && c.View.Height > 0, "view size must be positive")
	check(c.Timing.TickRate > 0 && c.Timing.TickRate <= 240, "tick_rate %d out of range 1..240", c.Timing.TickRate)

	p := c.Player
	check(p.Width > 0 && p.Height > 0, "player size must be positive")
	check(p.MaxSpeed > 0, "player max_speed must be positive")
	check(p.Acceleration > 0, "player acceleration must be positive")
	check(p.Deceleration >= 0 && p.Deceleration < 1, "player deceleration %v must be in [0,1)", p.Deceleration)
	check(p.JumpPower < 0, "player jump_power must be negative")
	check(p.MaxHealth > 0, "player max_health must be positive")
	check(p.Lives > 0, "player lives must be positive")
	check(p.AnimFrames > 0 && p.AnimCadence > 0, "player animation must have frames and cadence")

	for name, e := range map[string]EnemyConfig{EnemyStandard: c.Enemies.Standard, EnemyBoss: c.Enemies.Boss} {
		check(e.Width > 0 && e.Height > 0, "%s enemy size must be positive", name)
		check(e.Health > 0, "%s enemy health must be positive", name)
		check(e.Speed >= 0, "%s enemy speed must not be negative", name)
		check(e.PatrolRadius >= 0, "%s enemy patrol_radius must not be negative", name)
	}
	check(c.Enemies.ContactDamage >= 0, "contact_damage must not be negative")

	check(c.Projectile.Speed > 0, "projectile speed must be positive")
	check(c.Projectile.Width > 0 && c.Projectile.Height > 0, "projectile size must be positive")
	check(c.Projectile.Damage > 0, "projectile damage must be positive")

	check(c.Collectibles.Width > 0 && c.Collectibles.Height > 0, "collectible size must be positive")

	switch c.Camera.Mode {
	case CameraSmooth:
		check(c.Camera.Smoothing > 0 && c.Camera.Smoothing <= 1, "camera smoothing %v must be in (0,1]", c.Camera.Smoothing)
	case CameraSnap:
	default:
		check(false, "unknown camera mode %q", c.Camera.Mode)
	}

	check(len(c.Levels) > 0, "at least one level is required")
	for i, lvl := range c.Levels {
		check(lvl.Number == i+1, "level %d has number %d, levels must be numbered from 1 in order", i+1, lvl.Number)
		check(len(lvl.Enemies) > 0, "level %d has no enemies", i+1)
		for _, s := range lvl.Enemies {
			check(s.Kind == EnemyStandard || s.Kind == EnemyBoss, "level %d: unknown enemy kind %q", i+1, s.Kind)
		}
		for _, s := range lvl.Collectibles {
			check(s.Kind == CollectibleHealth || s.Kind == CollectibleExtraLife, "level %d: unknown collectible kind %q", i+1, s.Kind)
		}
	}

	return errors.Join(errs...)
}

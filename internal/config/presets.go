package config

import "fmt"

// Preset names a difficulty setting.
type Preset string

// Difficulty presets.
const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset parses a preset name. An empty name means normal.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetNormal:
		return PresetNormal, nil
	case PresetEasy, PresetHard:
		return Preset(s), nil
	}
	return "", invalid("unknown difficulty %q (want easy, normal or hard)", s)
}

// String implements fmt.Stringer.
func (p Preset) String() string { return string(p) }

// ApplyPreset returns cfg adjusted for the preset. Normal returns cfg unchanged.
func ApplyPreset(cfg Config, preset Preset) Config {
	switch preset {
	case PresetEasy:
		cfg.Player.Lives += 2
		cfg.Enemies.Standard = scaleEnemy(cfg.Enemies.Standard, 0.75)
		cfg.Enemies.Boss = scaleEnemy(cfg.Enemies.Boss, 0.75)
		cfg.Collectibles.HealthRestore *= 2
	case PresetHard:
		cfg.Player.Lives = max(1, cfg.Player.Lives-1)
		cfg.Enemies.Standard = scaleEnemy(cfg.Enemies.Standard, 1.5)
		cfg.Enemies.Boss = scaleEnemy(cfg.Enemies.Boss, 1.5)
		cfg.Enemies.ContactDamage *= 2
	}
	return cfg
}

func scaleEnemy(e EnemyConfig, factor float64) EnemyConfig {
	e.Speed *= factor
	e.ChaseRange *= factor
	return e
}

// Summary is a one-line description used in logs.
func (c Config) Summary() string {
	return fmt.Sprintf("levels=%d tick=%d camera=%s lives=%d",
		len(c.Levels), c.Timing.TickRate, c.Camera.Mode, c.Player.Lives)
}

// Package config provides YAML-based game configuration: tuning constants,
// the level catalog and difficulty presets. A Config is built once at startup
// and passed by value; nothing in it is mutated while a game runs.
package config

// Config is the complete, immutable configuration for the adventure game.
type Config struct {
	View         ViewConfig         `yaml:"view"`
	Timing       TimingConfig       `yaml:"timing"`
	Player       PlayerConfig       `yaml:"player"`
	Enemies      EnemiesConfig      `yaml:"enemies"`
	Projectile   ProjectileConfig   `yaml:"projectile"`
	Collectibles CollectiblesConfig `yaml:"collectibles"`
	Scoring      ScoringConfig      `yaml:"scoring"`
	Camera       CameraConfig       `yaml:"camera"`
	Parallax     ParallaxConfig     `yaml:"parallax"`
	Levels       []LevelConfig      `yaml:"levels"`
}

// ViewConfig maps world units onto terminal cells.
type ViewConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // world units per character column
	CellHeight float64 `yaml:"cell_height"` // world units per character row
	Width      float64 `yaml:"width"`       // viewport used before the terminal size is known
	Height     float64 `yaml:"height"`
}

// TimingConfig holds the frame pacing.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// PlayerConfig defines the player's body and movement constants.
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"` // multiplier applied when no direction is held
	MaxSpeed     float64 `yaml:"max_speed"`
	Gravity      float64 `yaml:"gravity"`
	JumpPower    float64 `yaml:"jump_power"` // negative: up is -y
	FloorY       float64 `yaml:"floor_y"`
	MaxHealth    int     `yaml:"max_health"`
	Lives        int     `yaml:"lives"`
	AnimFrames   int     `yaml:"anim_frames"`
	AnimCadence  int     `yaml:"anim_cadence"` // ticks per animation frame
}

// EnemyConfig defines one enemy variant.
type EnemyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	ChaseRange   float64 `yaml:"chase_range"`
	PatrolRadius float64 `yaml:"patrol_radius"` // patrol range is spawn x ± radius
	Health       int     `yaml:"health"`
}

// EnemiesConfig groups the enemy variants and contact rules.
type EnemiesConfig struct {
	Standard      EnemyConfig `yaml:"standard"`
	Boss          EnemyConfig `yaml:"boss"`
	ContactDamage int         `yaml:"contact_damage"` // player health lost per tick of overlap
}

// ProjectileConfig defines the player's shots.
type ProjectileConfig struct {
	Speed           float64 `yaml:"speed"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Damage          int     `yaml:"damage"`
	OffscreenMargin float64 `yaml:"offscreen_margin"`
}

// CollectiblesConfig defines pickup sizes and effects.
type CollectiblesConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	HealthRestore int     `yaml:"health_restore"`
	ExtraLives    int     `yaml:"extra_lives"`
}

// ScoringConfig defines points awarded per event.
type ScoringConfig struct {
	EnemyHit    int `yaml:"enemy_hit"`
	Collect     int `yaml:"collect"`
	EnemyDefeat int `yaml:"enemy_defeat"`
}

// Camera modes.
const (
	CameraSmooth = "smooth"
	CameraSnap   = "snap"
)

// CameraConfig selects how the view follows the player.
type CameraConfig struct {
	Mode      string  `yaml:"mode"`
	Smoothing float64 `yaml:"smoothing"` // fraction of the remaining distance covered per tick
}

// ParallaxConfig lists background layer speeds, background-most first.
type ParallaxConfig struct {
	LayerSpeeds []float64 `yaml:"layer_speeds"`
}

// Spawn kinds used in the level catalog.
const (
	EnemyStandard        = "standard"
	EnemyBoss            = "boss"
	CollectibleHealth    = "health"
	CollectibleExtraLife = "extra_life"
)

// LevelConfig is one catalog entry.
type LevelConfig struct {
	Number       int           `yaml:"number"`
	Name         string        `yaml:"name"`
	Enemies      []SpawnConfig `yaml:"enemies"`
	Collectibles []SpawnConfig `yaml:"collectibles"`
}

// SpawnConfig places one entity. Enemies use (X, Y) as their top-left
// corner, collectibles as their center.
type SpawnConfig struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

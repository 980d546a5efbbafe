package config

import _ "embed"

//go:embed defaults/adventure.yaml
var defaultAdventureYAML []byte

// Default returns the built-in configuration. It mirrors
// defaults/adventure.yaml and is used when no YAML source can be read.
func Default() Config {
	return Config{
		View: ViewConfig{
			CellWidth:  20,
			CellHeight: 40,
			Width:      1700,
			Height:     800,
		},
		Timing: TimingConfig{TickRate: 60},
		Player: PlayerConfig{
			StartX:       100,
			StartY:       400,
			Width:        40,
			Height:       80,
			Acceleration: 0.5,
			Deceleration: 0.9,
			MaxSpeed:     7,
			Gravity:      1,
			JumpPower:    -15,
			FloorY:       400,
			MaxHealth:    100,
			Lives:        3,
			AnimFrames:   4,
			AnimCadence:  5,
		},
		Enemies: EnemiesConfig{
			ContactDamage: 1,
			Standard: EnemyConfig{
				Width:        40,
				Height:       80,
				Speed:        2,
				ChaseRange:   300,
				PatrolRadius: 100,
				Health:       50,
			},
			Boss: EnemyConfig{
				Width:        80,
				Height:       80,
				Speed:        1,
				ChaseRange:   300,
				PatrolRadius: 100,
				Health:       200,
			},
		},
		Projectile: ProjectileConfig{
			Speed:           10,
			Width:           20,
			Height:          10,
			Damage:          25,
			OffscreenMargin: 50,
		},
		Collectibles: CollectiblesConfig{
			Width:         20,
			Height:        40,
			HealthRestore: 20,
			ExtraLives:    1,
		},
		Scoring: ScoringConfig{
			EnemyHit:    100,
			Collect:     50,
			EnemyDefeat: 0,
		},
		Camera: CameraConfig{
			Mode:      CameraSmooth,
			Smoothing: 0.1,
		},
		Parallax: ParallaxConfig{
			LayerSpeeds: []float64{0.2, 0.4, 0.6},
		},
		Levels: defaultLevels(),
	}
}

func defaultLevels() []LevelConfig {
	std := func(x float64) SpawnConfig { return SpawnConfig{Kind: EnemyStandard, X: x, Y: 400} }
	return []LevelConfig{
		{
			Number:  1,
			Name:    "Meadow",
			Enemies: []SpawnConfig{std(800), std(1200)},
			Collectibles: []SpawnConfig{
				{Kind: CollectibleHealth, X: 500, Y: 400},
				{Kind: CollectibleExtraLife, X: 700, Y: 400},
			},
		},
		{
			Number:  2,
			Name:    "Forest",
			Enemies: []SpawnConfig{std(800), std(1000), std(1200)},
			Collectibles: []SpawnConfig{
				{Kind: CollectibleHealth, X: 600, Y: 400},
				{Kind: CollectibleExtraLife, X: 800, Y: 400},
			},
		},
		{
			Number: 3,
			Name:   "Keep",
			Enemies: []SpawnConfig{
				std(800),
				std(1000),
				{Kind: EnemyBoss, X: 1500, Y: 400},
			},
			Collectibles: []SpawnConfig{
				{Kind: CollectibleHealth, X: 700, Y: 400},
			},
		},
	}
}

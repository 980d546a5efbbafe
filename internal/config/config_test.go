package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(defaultAdventureYAML)
	if err != nil {
		t.Fatalf("embedded defaults: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() differ:\nyaml:    %+v\ndefault: %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  lives: 5\ncamera:\n  mode: snap\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadWithSource(path)
	if err != nil {
		t.Fatalf("LoadWithSource: %v", err)
	}
	if src != path {
		t.Errorf("source = %q, want %q", src, path)
	}
	if cfg.Player.Lives != 5 {
		t.Errorf("Lives = %d, want 5", cfg.Player.Lives)
	}
	if cfg.Camera.Mode != CameraSnap {
		t.Errorf("Camera.Mode = %q, want snap", cfg.Camera.Mode)
	}
	if cfg.Player.MaxSpeed != 7 {
		t.Errorf("MaxSpeed = %v, want default 7", cfg.Player.MaxSpeed)
	}
	if len(cfg.Levels) != 3 {
		t.Errorf("len(Levels) = %d, want 3", len(cfg.Levels))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("camera:\n  mode: orbit\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load(bad) = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.Timing.TickRate = 0 }},
		{"positive jump", func(c *Config) { c.Player.JumpPower = 15 }},
		{"no lives", func(c *Config) { c.Player.Lives = 0 }},
		{"boss without health", func(c *Config) { c.Enemies.Boss.Health = 0 }},
		{"smoothing above one", func(c *Config) { c.Camera.Smoothing = 1.5 }},
		{"no levels", func(c *Config) { c.Levels = nil }},
		{"levels out of order", func(c *Config) {
			c.Levels = []LevelConfig{{Number: 2}}
		}},
		{"unknown enemy kind", func(c *Config) {
			c.Levels = []LevelConfig{{Number: 1, Enemies: []SpawnConfig{{Kind: "dragon"}}}}
		}},
		{"unknown collectible kind", func(c *Config) {
			c.Levels = []LevelConfig{{Number: 1, Collectibles: []SpawnConfig{{Kind: "coin"}}}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    Preset
		wantErr bool
	}{
		{"", PresetNormal, false},
		{"normal", PresetNormal, false},
		{"easy", PresetEasy, false},
		{"hard", PresetHard, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	if got := ApplyPreset(base, PresetNormal); !reflect.DeepEqual(got, base) {
		t.Error("normal preset should not change the config")
	}

	easy := ApplyPreset(base, PresetEasy)
	if easy.Player.Lives != base.Player.Lives+2 {
		t.Errorf("easy lives = %d, want %d", easy.Player.Lives, base.Player.Lives+2)
	}
	if easy.Enemies.Standard.Speed >= base.Enemies.Standard.Speed {
		t.Error("easy enemies should be slower")
	}

	hard := ApplyPreset(base, PresetHard)
	if hard.Player.Lives != base.Player.Lives-1 {
		t.Errorf("hard lives = %d, want %d", hard.Player.Lives, base.Player.Lives-1)
	}
	if hard.Enemies.ContactDamage != 2*base.Enemies.ContactDamage {
		t.Errorf("hard contact damage = %d", hard.Enemies.ContactDamage)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}

	// The base config is not modified.
	if base.Player.Lives != 3 || base.Enemies.Standard.Speed != 2 {
		t.Error("ApplyPreset mutated its input")
	}
}

func TestLoadSearchPathInvalidFileIsError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".sidescroller", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("camera:\n  mode: orbit\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := LoadWithSource("")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadWithSource = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadSearchPathLocalConfigs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if _, src, err := LoadWithSource(""); err != nil || src != "embedded" {
		t.Fatalf("no files: source %q err %v, want embedded", src, err)
	}

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join("configs", FileName)
	if err := os.WriteFile(path, []byte("player:\n  lives: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, src, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource: %v", err)
	}
	if src != path || cfg.Player.Lives != 4 {
		t.Errorf("source %q lives %d, want %q and 4", src, cfg.Player.Lives, path)
	}

	if err := os.WriteFile(path, []byte("player: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadWithSource(""); err == nil {
		t.Error("expected error for malformed ./configs file")
	}
}

package adventure

import (
	"fmt"

	"github.com/vovakirdan/tui-sidescroller/internal/config"
	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

// Catalog builds the entity sets of each level from the configured levels.
type Catalog struct {
	levels       []config.LevelConfig
	enemies      config.EnemiesConfig
	collectibles config.CollectiblesConfig
}

// NewCatalog creates a catalog over cfg's levels. cfg is expected to have
// passed Validate; unknown kinds are skipped.
func NewCatalog(cfg config.Config) *Catalog {
	return &Catalog{
		levels:       cfg.Levels,
		enemies:      cfg.Enemies,
		collectibles: cfg.Collectibles,
	}
}

// Last returns the highest level number.
func (c *Catalog) Last() int {
	return len(c.levels)
}

// Name returns the display name of level n, or "Level n" when unnamed.
func (c *Catalog) Name(n int) string {
	if n >= 1 && n <= len(c.levels) && c.levels[n-1].Name != "" {
		return c.levels[n-1].Name
	}
	return fmt.Sprintf("Level %d", n)
}

// Load returns freshly built enemies and collectibles for level n.
// ok is false when no such level exists.
func (c *Catalog) Load(n int) (enemies []*Enemy, items []*Collectible, ok bool) {
	if n < 1 || n > len(c.levels) {
		return nil, nil, false
	}
	lvl := c.levels[n-1]

	for _, s := range lvl.Enemies {
		v, known := ParseVariant(s.Kind)
		if !known {
			continue
		}
		params := c.enemies.Standard
		if v == VariantBoss {
			params = c.enemies.Boss
		}
		enemies = append(enemies, NewEnemy(v, s.X, s.Y, params))
	}

	for _, s := range lvl.Collectibles {
		kind, known := ParseCollectibleKind(s.Kind)
		if !known {
			continue
		}
		items = append(items, &Collectible{
			Pos:  core.Vec{X: s.X, Y: s.Y},
			Kind: kind,
			Size: core.Vec{X: c.collectibles.Width, Y: c.collectibles.Height},
		})
	}
	return enemies, items, true
}

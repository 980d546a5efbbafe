package adventure

import "github.com/vovakirdan/tui-sidescroller/internal/config"

// Contact summarizes what collision resolution did during one tick.
type Contact struct {
	DamageTaken int
	LivesLost   int
	Hits        int // projectiles that struck an enemy
	Defeated    int // enemies removed
	Pickups     []CollectibleKind
	PlayerDead  bool // lives exhausted
}

// Resolver applies the collision rules between the entities of a World.
type Resolver struct {
	ContactDamage    int
	ProjectileDamage int
	HitScore         int
	DefeatScore      int
	CollectScore     int
	HealthRestore    int
	ExtraLives       int
}

// NewResolver takes the damage, scoring and pickup rules from cfg.
func NewResolver(cfg config.Config) Resolver {
	return Resolver{
		ContactDamage:    cfg.Enemies.ContactDamage,
		ProjectileDamage: cfg.Projectile.Damage,
		HitScore:         cfg.Scoring.EnemyHit,
		DefeatScore:      cfg.Scoring.EnemyDefeat,
		CollectScore:     cfg.Scoring.Collect,
		HealthRestore:    cfg.Collectibles.HealthRestore,
		ExtraLives:       cfg.Collectibles.ExtraLives,
	}
}

// Resolve checks player against enemies, then projectiles against enemies,
// then player against collectibles, mutating w.
func (r Resolver) Resolve(w *World) Contact {
	var c Contact
	r.playerVsEnemies(w, &c)
	r.projectilesVsEnemies(w, &c)
	r.playerVsCollectibles(w, &c)
	return c
}

// Contact damage is applied once per overlapping enemy on every tick of
// overlap.
func (r Resolver) playerVsEnemies(w *World, c *Contact) {
	body := w.Player.Rect()
	for _, e := range w.Enemies {
		if !body.Intersects(e.Rect()) {
			continue
		}
		c.DamageTaken += r.ContactDamage
		if w.Player.Hurt(r.ContactDamage) {
			c.LivesLost++
			if w.Player.Dead() {
				c.PlayerDead = true
			}
		}
	}
}

// Each projectile strikes at most the first enemy it overlaps.
func (r Resolver) projectilesVsEnemies(w *World, c *Contact) {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		shot := p.Rect()
		hit := -1
		for i, e := range w.Enemies {
			if shot.Intersects(e.Rect()) {
				hit = i
				break
			}
		}
		if hit < 0 {
			kept = append(kept, p)
			continue
		}

		c.Hits++
		w.Score += r.HitScore
		if w.Enemies[hit].Damage(r.ProjectileDamage) {
			c.Defeated++
			w.Score += r.DefeatScore
			w.Enemies = append(w.Enemies[:hit], w.Enemies[hit+1:]...)
		}
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
}

func (r Resolver) playerVsCollectibles(w *World, c *Contact) {
	body := w.Player.Rect()
	kept := w.Collectibles[:0]
	for _, item := range w.Collectibles {
		if !body.Intersects(item.Rect()) {
			kept = append(kept, item)
			continue
		}
		switch item.Kind {
		case KindHealth:
			w.Player.Heal(r.HealthRestore)
		case KindExtraLife:
			w.Player.Lives += r.ExtraLives
		}
		w.Score += r.CollectScore
		c.Pickups = append(c.Pickups, item.Kind)
	}
	clear(w.Collectibles[len(kept):])
	w.Collectibles = kept
}

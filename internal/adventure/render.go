package adventure

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

// Glyphs
const (
	GroundTop  = '▀'
	GroundFill = '░'
	ShotChar   = '•'
	HealthChar = '✚'
	LifeChar   = '♥'
)

// Player frames facing right. Row 0 is the head, row 1 the legs.
var playerFrames = [][]string{
	{"█◆", "╱╲"},
	{"█◆", "│╲"},
	{"█◆", "╲╱"},
	{"█◆", "╱│"},
}

var playerJump = []string{"█◆", "╲╲"}

var (
	enemySprite = []string{"◥◤", "██"}
	bossSprite  = []string{"◥▇▇◤", "████"}
)

// Background layer patterns, farthest first. Each is tiled across the view.
var layerPatterns = [][]string{
	{
		"  .       *          .      +       ",
		"      .         .          .     *  ",
	},
	{
		"        /\\              /\\      ",
		"   /\\  /  \\      /\\    /  \\     ",
		"  /  \\/    \\    /  \\  /    \\/\\  ",
	},
	{
		"  _.-~~-._      _.-~-._    ",
	},
}

var starGlyphs = []rune{'.', '.', '*', '+'}

// starField scatters the farthest layer's stars from seed. Seed 0 keeps the
// fixed pattern.
func starField(seed int64) []string {
	base := layerPatterns[0]
	if seed == 0 {
		return base
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0x5eed))
	rows := make([]string, len(base))
	for i, row := range base {
		cells := make([]rune, utf8.RuneCountInString(row))
		for j := range cells {
			cells[j] = ' '
			if rng.IntN(10) == 0 {
				cells[j] = starGlyphs[rng.IntN(len(starGlyphs))]
			}
		}
		rows[i] = string(cells)
	}
	return rows
}

var layerColors = []core.Color{core.ColorGray, core.ColorBlue, core.ColorGreen}

var mirrorRunes = map[rune]rune{
	'╱': '╲', '╲': '╱',
	'/': '\\', '\\': '/',
	'◥': '◤', '◤': '◥',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
}

// mirror flips sprite rows horizontally.
func mirror(rows []string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		rs := []rune(row)
		for l, r := 0, len(rs)-1; l < r; l, r = l+1, r-1 {
			rs[l], rs[r] = rs[r], rs[l]
		}
		for j, r := range rs {
			if m, ok := mirrorRunes[r]; ok {
				rs[j] = m
			}
		}
		out[i] = string(rs)
	}
	return out
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == PhaseMenu {
		g.drawBackground(dst)
		g.drawMenu(dst)
		return
	}

	g.drawBackground(dst)
	g.drawGround(dst)
	g.drawEntities(dst)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, core.ColorBrightYellow, "PAUSED", "Press P to resume")
	}

	if g.phase == PhaseGameOver {
		lines := []string{fmt.Sprintf("Score: %d", g.world.Score)}
		if g.outcome == core.OutcomeCompleted {
			lines = append(lines, "All levels cleared!")
		}
		lines = append(lines, "Press R to Restart or Q to Quit")
		drawCenteredMessage(dst, core.ColorRed, "GAME OVER", lines...)
	}
}

// cellRect projects a world rectangle through the camera onto cells.
func (g *Game) cellRect(r core.RectF) core.Rect {
	return g.camera.Apply(r).Cells(g.cfg.View.CellWidth, g.cfg.View.CellHeight)
}

// groundRow is the first screen row below the floor.
func (g *Game) groundRow() int {
	floor := g.cfg.Player.FloorY + g.cfg.Player.Height + g.camera.Offset.Y
	return int(math.Floor(floor / g.cfg.View.CellHeight))
}

func (g *Game) drawBackground(dst *core.Screen) {
	ground := g.groundRow()
	if g.phase == PhaseMenu {
		ground = dst.Height() - 2
	}
	// Farthest layer hangs from the top, the rest stack down to the ground.
	tops := []int{3, ground - 4, ground - 1}

	for i, pattern := range layerPatterns {
		if i >= len(g.parallax.Offsets) {
			break
		}
		if i == 0 && g.stars != nil {
			pattern = g.stars
		}
		rows := tile(pattern, dst.Width())
		for _, x := range g.parallax.Tiles(i) {
			col := int(math.Floor(x / g.cfg.View.CellWidth))
			dst.DrawSprite(col, tops[i], rows, layerColors[i])
		}
	}
}

// tile repeats each pattern row to exactly width runes.
func tile(pattern []string, width int) []string {
	out := make([]string, len(pattern))
	for i, row := range pattern {
		n := utf8.RuneCountInString(row)
		if n == 0 {
			continue
		}
		full := []rune(strings.Repeat(row, width/n+1))
		out[i] = string(full[:width])
	}
	return out
}

func (g *Game) drawGround(dst *core.Screen) {
	row := g.groundRow()
	if row >= dst.Height() {
		return
	}
	dst.DrawHLine(0, row, dst.Width(), GroundTop, core.ColorGreen)
	for y := max(row+1, 0); y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundFill, core.ColorOrange)
	}
}

func (g *Game) drawEntities(dst *core.Screen) {
	w := &g.world

	for _, item := range w.Collectibles {
		r := g.cellRect(item.Rect())
		switch item.Kind {
		case KindHealth:
			dst.SetColored(r.X, r.Y, HealthChar, core.ColorBrightGreen)
		case KindExtraLife:
			dst.SetColored(r.X, r.Y, LifeChar, core.ColorBrightRed)
		}
	}

	for _, e := range w.Enemies {
		r := g.cellRect(e.Rect())
		sprite, color := enemySprite, core.ColorRed
		if e.Variant == VariantBoss {
			sprite, color = bossSprite, core.ColorMagenta
			drawHealthBar(dst, r.X, r.Y-1, r.W, e.Health, e.MaxHealth)
		}
		if e.Dir < 0 {
			sprite = mirror(sprite)
		}
		dst.DrawSprite(r.X, r.Y, sprite, color)
	}

	for _, p := range w.Projectiles {
		r := g.cellRect(p.Rect())
		dst.SetColored(r.X, r.Y, ShotChar, core.ColorBrightYellow)
	}

	g.drawPlayer(dst)
}

// PlayerSprite returns the rows drawn for the player this tick.
func (g *Game) PlayerSprite() []string {
	p := g.world.Player
	sprite := playerFrames[p.Frame%len(playerFrames)]
	if p.Jumping {
		sprite = playerJump
	}
	if !p.FacingRight {
		sprite = mirror(sprite)
	}
	return sprite
}

func (g *Game) drawPlayer(dst *core.Screen) {
	r := g.cellRect(g.world.Player.Rect())
	color := core.ColorBrightCyan
	if g.hurt > 0 && g.hurt%2 == 0 {
		color = core.ColorBrightRed
	}
	dst.DrawSprite(r.X, r.Y, g.PlayerSprite(), color)
}

func drawHealthBar(dst *core.Screen, x, y, width, health, maxHealth int) {
	if maxHealth <= 0 || width <= 0 {
		return
	}
	filled := (health*width + maxHealth - 1) / maxHealth
	for i := 0; i < width; i++ {
		if i < filled {
			dst.SetColored(x+i, y, '▬', core.ColorBrightRed)
		} else {
			dst.SetColored(x+i, y, '▬', core.ColorDarkGray)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.world.Player
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.world.Score), core.ColorBrightWhite)

	healthColor := core.ColorBrightGreen
	switch {
	case p.Health <= 25:
		healthColor = core.ColorBrightRed
	case p.Health <= 50:
		healthColor = core.ColorBrightYellow
	}
	dst.DrawTextColored(1, 1, fmt.Sprintf("Health: %d", p.Health), healthColor)
	dst.DrawTextColored(1, 2, fmt.Sprintf("Lives: %d", p.Lives), core.ColorBrightRed)

	level := fmt.Sprintf("Level %d/%d: %s", g.level, g.catalog.Last(), g.catalog.Name(g.level))
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(level)-1, 0, level, core.ColorBrightYellow)
}

func (g *Game) drawMenu(dst *core.Screen) {
	h := dst.Height()
	top := h/3 - 1
	dst.DrawTextCentered(top, g.Title(), core.ColorBrightYellow)
	dst.DrawTextCentered(top+2, "Press ENTER to Play", core.ColorBrightWhite)
	dst.DrawTextCentered(top+4, "←/→ move   SPACE jump   F shoot", core.ColorGray)
	dst.DrawTextCentered(top+5, "P pause   R restart   Q quit", core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(l))/2, boxY+3+i, l, core.ColorBrightWhite)
	}
}

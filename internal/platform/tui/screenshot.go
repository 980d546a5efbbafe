package tui

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

// Glyph cell size of basicfont.Face7x13.
const (
	glyphW = 7
	glyphH = 13
)

// pngScale enlarges the exported image so single pixels stay visible.
const pngScale = 2

var pngPalette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
	core.ColorRed:          {R: 0xcd, G: 0x00, B: 0x00, A: 0xff},
	core.ColorGreen:        {R: 0x00, G: 0xcd, B: 0x00, A: 0xff},
	core.ColorYellow:       {R: 0xcd, G: 0xcd, B: 0x00, A: 0xff},
	core.ColorBlue:         {R: 0x00, G: 0x00, B: 0xee, A: 0xff},
	core.ColorMagenta:      {R: 0xcd, G: 0x00, B: 0xcd, A: 0xff},
	core.ColorCyan:         {R: 0x00, G: 0xcd, B: 0xcd, A: 0xff},
	core.ColorWhite:        {R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	core.ColorBrightRed:    {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	core.ColorBrightGreen:  {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	core.ColorBrightYellow: {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	core.ColorBrightCyan:   {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightWhite:  {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:       {R: 0xff, G: 0x87, B: 0x00, A: 0xff},
	core.ColorGray:         {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	core.ColorDarkGray:     {R: 0x44, G: 0x44, B: 0x44, A: 0xff},
}

// RenderPNG draws the screen buffer as an image. Runes the bitmap font
// lacks (block and box glyphs) are drawn as solid blocks.
func RenderPNG(s *core.Screen) image.Image {
	dc := gg.NewContext(max(1, s.Width()*glyphW), max(1, s.Height()*glyphH))
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			c, ok := pngPalette[cell.Color]
			if !ok {
				c = pngPalette[core.ColorDefault]
			}
			dc.SetColor(c)

			px, py := float64(x*glyphW), float64(y*glyphH)
			if cell.Rune < 0x7f {
				dc.DrawString(string(cell.Rune), px, py+float64(basicfont.Face7x13.Ascent))
				continue
			}
			dc.DrawRectangle(px+1, py+2, glyphW-2, glyphH-4)
			dc.Fill()
		}
	}

	img := dc.Image()
	return imaging.Resize(img, img.Bounds().Dx()*pngScale, 0, imaging.NearestNeighbor)
}

// Screenshot holds the paths written by SaveScreenshot.
type Screenshot struct {
	Text string
	PNG  string
}

// SaveScreenshot writes the screen as plain text and as a PNG into dir.
// File names are prefix plus a timestamp.
func SaveScreenshot(s *core.Screen, dir, prefix string, now time.Time) (Screenshot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Screenshot{}, fmt.Errorf("screenshot: create dir: %w", err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", prefix, now.Format("20060102_150405")))
	shot := Screenshot{Text: base + ".txt", PNG: base + ".png"}

	if err := os.WriteFile(shot.Text, []byte(s.String()), 0o600); err != nil {
		return Screenshot{}, fmt.Errorf("screenshot: write text: %w", err)
	}
	if err := imaging.Save(RenderPNG(s), shot.PNG); err != nil {
		return Screenshot{}, fmt.Errorf("screenshot: write png: %w", err)
	}
	return shot, nil
}

// DefaultScreenshotDir returns ~/.sidescroller/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".sidescroller", "screenshots")
}

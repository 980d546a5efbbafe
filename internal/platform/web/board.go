package web

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-sidescroller/internal/storage"
)

// Board card geometry.
const (
	boardWidth  = 360
	boardRowH   = 20
	boardHeader = 48
)

// RenderBoard draws the top runs as a PNG-ready card.
func RenderBoard(runs []storage.Run) image.Image {
	h := boardHeader + max(1, len(runs))*boardRowH + 16
	dc := gg.NewContext(boardWidth, h)
	dc.SetHexColor("#1c1c28")
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetHexColor("#ffd75f")
	dc.DrawStringAnchored("HIGH SCORES", boardWidth/2, 20, 0.5, 0.5)
	dc.SetHexColor("#5f5f87")
	dc.SetLineWidth(1)
	dc.DrawLine(12, 34, boardWidth-12, 34)
	dc.Stroke()

	if len(runs) == 0 {
		dc.SetHexColor("#8a8a8a")
		dc.DrawStringAnchored("no runs yet", boardWidth/2, boardHeader+8, 0.5, 0.5)
		return dc.Image()
	}

	for i, r := range runs {
		y := float64(boardHeader + i*boardRowH + 8)
		if i%2 == 1 {
			dc.SetHexColor("#262636")
			dc.DrawRectangle(8, y-boardRowH/2, boardWidth-16, boardRowH)
			dc.Fill()
		}

		dc.SetHexColor("#e5e5e5")
		if r.Outcome == "completed" {
			dc.SetHexColor("#5fff87")
		}
		dc.DrawStringAnchored(fmt.Sprintf("%2d. %-12.12s", i+1, r.Player), 16, y, 0, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("L%d", r.Level), boardWidth-110, y, 0, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("%d", r.Score), boardWidth-16, y, 1, 0.5)
	}
	return dc.Image()
}

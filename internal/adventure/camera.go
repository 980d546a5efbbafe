package adventure

import (
	"github.com/vovakirdan/tui-sidescroller/internal/config"
	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

// Camera is the offset added to world positions to place them in the view.
type Camera struct {
	Offset core.Vec
	ViewW  float64
	ViewH  float64

	mode      string
	smoothing float64
}

// NewCamera creates a camera for a view of viewW x viewH world units.
func NewCamera(cfg config.CameraConfig, viewW, viewH float64) *Camera {
	return &Camera{
		ViewW:     viewW,
		ViewH:     viewH,
		mode:      cfg.Mode,
		smoothing: cfg.Smoothing,
	}
}

// Target returns the offset that puts pos at the view center. The center
// is taken on whole units.
func (c *Camera) Target(pos core.Vec) core.Vec {
	return core.Vec{
		X: float64(int(c.ViewW)/2) - pos.X,
		Y: float64(int(c.ViewH)/2) - pos.Y,
	}
}

// Update snaps the offset to the target.
func (c *Camera) Update(pos core.Vec) {
	c.Offset = c.Target(pos)
}

// SmoothUpdate moves the offset a fixed fraction of the way to the target.
// The fraction is per tick, not per second.
func (c *Camera) SmoothUpdate(pos core.Vec) {
	d := c.Target(pos).Sub(c.Offset)
	c.Offset = c.Offset.Add(d.Scale(c.smoothing))
}

// Follow updates the camera using the configured mode.
func (c *Camera) Follow(pos core.Vec) {
	if c.mode == config.CameraSnap {
		c.Update(pos)
		return
	}
	c.SmoothUpdate(pos)
}

// Apply translates a world rectangle into view space.
func (c *Camera) Apply(r core.RectF) core.RectF {
	return r.Translate(c.Offset)
}

// Resize changes the view size. The offset is kept.
func (c *Camera) Resize(viewW, viewH float64) {
	c.ViewW = viewW
	c.ViewH = viewH
}

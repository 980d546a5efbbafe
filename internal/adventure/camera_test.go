package adventure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-sidescroller/internal/config"
	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

func TestCameraTarget(t *testing.T) {
	cam := NewCamera(config.Default().Camera, 1700, 800)
	assert.Equal(t, core.Vec{X: 750, Y: 0}, cam.Target(core.Vec{X: 100, Y: 400}))

	odd := NewCamera(config.Default().Camera, 1701, 801)
	assert.Equal(t, core.Vec{X: 750, Y: 0}, odd.Target(core.Vec{X: 100, Y: 400}), "halves are whole units")
}

func TestCameraSnap(t *testing.T) {
	cam := NewCamera(config.CameraConfig{Mode: config.CameraSnap}, 1700, 800)
	cam.Follow(core.Vec{X: 1000, Y: 400})
	assert.Equal(t, core.Vec{X: -150, Y: 0}, cam.Offset)
}

func TestCameraSmoothing(t *testing.T) {
	cam := NewCamera(config.Default().Camera, 1700, 800)
	pos := core.Vec{X: 100, Y: 300}

	cam.SmoothUpdate(pos)
	assert.InDelta(t, 75, cam.Offset.X, 1e-9)
	assert.InDelta(t, 10, cam.Offset.Y, 1e-9)

	prev := cam.Target(pos).Sub(cam.Offset).X
	for i := 0; i < 200; i++ {
		cam.Follow(pos)
		gap := cam.Target(pos).Sub(cam.Offset).X
		assert.Less(t, gap, prev)
		prev = gap
	}
	assert.InDelta(t, 750, cam.Offset.X, 1e-3, "converges to the target")
	assert.InDelta(t, 100, cam.Offset.Y, 1e-3)
}

func TestCameraApply(t *testing.T) {
	cam := NewCamera(config.Default().Camera, 1700, 800)
	cam.Offset = core.Vec{X: -50, Y: 20}
	got := cam.Apply(core.NewRectF(100, 400, 40, 80))
	assert.Equal(t, core.NewRectF(50, 420, 40, 80), got)
}

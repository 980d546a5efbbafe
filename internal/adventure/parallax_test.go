package adventure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallaxLayerSpeeds(t *testing.T) {
	p := NewParallax([]float64{0.2, 0.4, 0.6}, 1700)
	p.Update(7)

	assert.InDelta(t, -1.4, p.Offsets[0], 1e-9)
	assert.InDelta(t, -2.8, p.Offsets[1], 1e-9)
	assert.InDelta(t, -4.2, p.Offsets[2], 1e-9)

	p.Update(-7)
	for i := range p.Offsets {
		assert.InDelta(t, 0, p.Offsets[i], 1e-9)
	}
}

func TestParallaxWraps(t *testing.T) {
	p := NewParallax([]float64{0.2, 0.4, 0.6}, 1700)

	p.Offsets[0] = -1699.9
	p.Offsets[2] = 1699.5
	p.Update(1)
	assert.Equal(t, 0.0, p.Offsets[0], "wraps after a full width to the left")

	p.Offsets[2] = 1699.5
	p.Update(-1)
	assert.Equal(t, 0.0, p.Offsets[2], "wraps after a full width to the right")
}

func TestParallaxTiles(t *testing.T) {
	p := NewParallax([]float64{0.5}, 100)

	p.Offsets[0] = -30
	assert.Equal(t, []float64{-30, 70}, p.Tiles(0))

	p.Offsets[0] = 30
	assert.Equal(t, []float64{30, 130, -70}, p.Tiles(0))
}

func TestParallaxCopiesSpeeds(t *testing.T) {
	speeds := []float64{0.2}
	p := NewParallax(speeds, 100)
	speeds[0] = 9
	assert.Equal(t, 0.2, p.Speeds[0])
}

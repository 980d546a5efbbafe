package adventure

// Parallax scrolls background layers against the player's horizontal
// velocity. Layer 0 is the farthest.
type Parallax struct {
	Offsets []float64
	Speeds  []float64
	ViewW   float64
}

// NewParallax creates layers with the given speeds, all at offset 0.
func NewParallax(speeds []float64, viewW float64) *Parallax {
	return &Parallax{
		Offsets: make([]float64, len(speeds)),
		Speeds:  append([]float64(nil), speeds...),
		ViewW:   viewW,
	}
}

// Update shifts every layer by -vx × speed and wraps it to 0 once it has
// moved a full view width either way.
func (p *Parallax) Update(vx float64) {
	for i, speed := range p.Speeds {
		p.Offsets[i] -= vx * speed
		if p.Offsets[i] <= -p.ViewW || p.Offsets[i] >= p.ViewW {
			p.Offsets[i] = 0
		}
	}
}

// Tiles returns the x positions at which layer i is drawn so that copies
// of view width cover the whole view.
func (p *Parallax) Tiles(i int) []float64 {
	off := p.Offsets[i]
	tiles := []float64{off, off + p.ViewW}
	if off > 0 {
		tiles = append(tiles, off-p.ViewW)
	}
	return tiles
}

// Reset puts every layer back at offset 0.
func (p *Parallax) Reset() {
	clear(p.Offsets)
}

// Resize changes the wrap width.
func (p *Parallax) Resize(viewW float64) {
	p.ViewW = viewW
}

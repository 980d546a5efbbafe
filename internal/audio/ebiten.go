package audio

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

// EbitenSink plays a Bank through the ebiten audio context. It works
// without an ebiten game loop; only the audio package is used.
type EbitenSink struct {
	ctx    *audio.Context
	bank   Bank
	volume float64

	mu      sync.Mutex
	playing []*audio.Player
}

// NewEbitenSink opens (or reuses) the process audio context. A process can
// have only one context, so every sink shares it.
func NewEbitenSink(bank Bank, volume float64) (*EbitenSink, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	if ctx.SampleRate() != SampleRate {
		return nil, fmt.Errorf("audio: context runs at %d Hz, want %d", ctx.SampleRate(), SampleRate)
	}
	return &EbitenSink{
		ctx:    ctx,
		bank:   bank,
		volume: core.ClampF(volume, 0, 1),
	}, nil
}

// Play starts the sound for kind. Kinds without a sound are ignored.
func (s *EbitenSink) Play(kind core.EventKind) {
	pcm, ok := s.bank[kind]
	if !ok || len(pcm) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reap()

	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(s.volume)
	p.Play()
	s.playing = append(s.playing, p)
}

// reap closes players that finished. Callers hold s.mu.
func (s *EbitenSink) reap() {
	kept := s.playing[:0]
	for _, p := range s.playing {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		p.Close() //nolint:errcheck // finished player
	}
	clear(s.playing[len(kept):])
	s.playing = kept
}

// Close stops every sound still playing.
func (s *EbitenSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for _, p := range s.playing {
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.playing = nil
	return firstErr
}

package audio

import (
	"encoding/binary"
	"math"

	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

// note is one segment of a synthesized cue: a square wave sweeping from
// From to To Hz over Dur seconds.
type note struct {
	From, To float64
	Dur      float64
}

var tones = map[core.EventKind][]note{
	core.EventJump:          {{From: 300, To: 700, Dur: 0.12}},
	core.EventShoot:         {{From: 900, To: 300, Dur: 0.08}},
	core.EventCollect:       {{From: 660, To: 660, Dur: 0.06}, {From: 990, To: 990, Dur: 0.09}},
	core.EventEnemyHit:      {{From: 160, To: 120, Dur: 0.05}},
	core.EventEnemyDefeated: {{From: 500, To: 90, Dur: 0.15}},
	core.EventLifeLost:      {{From: 400, To: 100, Dur: 0.3}},
	core.EventLevelClear:    {{From: 523, To: 523, Dur: 0.1}, {From: 659, To: 659, Dur: 0.1}, {From: 784, To: 784, Dur: 0.18}},
	core.EventGameOver:      {{From: 300, To: 80, Dur: 0.5}},
}

// amplitude is kept well below full scale so overlapping cues do not clip.
const amplitude = 0.25 * math.MaxInt16

// Synthesize renders the built-in tone for kind. It returns nil for kinds
// without a tone.
func Synthesize(kind core.EventKind) []byte {
	notes, ok := tones[kind]
	if !ok {
		return nil
	}

	var buf []byte
	for _, n := range notes {
		buf = appendSweep(buf, n)
	}
	return buf
}

func appendSweep(buf []byte, n note) []byte {
	samples := int(n.Dur * SampleRate)
	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := n.From + (n.To-n.From)*t
		phase += freq / SampleRate
		phase -= math.Floor(phase)

		v := 1.0
		if phase >= 0.5 {
			v = -1
		}
		// Short linear attack and release avoid clicks.
		env := math.Min(1, math.Min(t*20, (1-t)*10))
		s := int16(v * env * amplitude)

		buf = binary.LittleEndian.AppendUint16(buf, uint16(s)) // left
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s)) // right
	}
	return buf
}

// DefaultBank returns synthesized tones for every cue.
func DefaultBank() Bank {
	bank := make(Bank, len(tones))
	for kind := range tones {
		bank[kind] = Synthesize(kind)
	}
	return bank
}

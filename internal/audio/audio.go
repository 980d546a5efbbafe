// Package audio plays the game's sound cues. The simulation never waits
// on a sink: Play starts a sound and returns.
package audio

import (
	"errors"

	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

// SampleRate is the rate of every PCM buffer in a Bank.
const SampleRate = 44100

// ErrUnsupportedFormat is returned for sound files that are not mp3, ogg or wav.
var ErrUnsupportedFormat = errors.New("audio: unsupported format")

// Sink receives sound cues.
type Sink interface {
	Play(kind core.EventKind)
	Close() error
}

// Null is a Sink that plays nothing. SSH sessions and --mute use it.
type Null struct{}

// Play does nothing.
func (Null) Play(core.EventKind) {}

// Close does nothing.
func (Null) Close() error { return nil }

// Bank maps event kinds to 16-bit little-endian stereo PCM at SampleRate.
type Bank map[core.EventKind][]byte

// cueNames are the file stems looked up in a sound pack directory.
var cueNames = map[core.EventKind]string{
	core.EventJump:          "jump",
	core.EventShoot:         "shoot",
	core.EventCollect:       "collect",
	core.EventEnemyHit:      "hit",
	core.EventEnemyDefeated: "defeat",
	core.EventLifeLost:      "life_lost",
	core.EventLevelClear:    "level_clear",
	core.EventGameOver:      "game_over",
}

// CueName returns the sound pack file stem for kind, or "" if the kind
// has no sound.
func CueName(kind core.EventKind) string {
	return cueNames[kind]
}

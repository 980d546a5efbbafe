package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Extensions tried, in order, when looking for a cue in a sound pack.
var Extensions = []string{".mp3", ".ogg", ".wav"}

// Decode reads a whole sound file and returns it as PCM at SampleRate.
// The format is chosen by the extension of name.
func Decode(name string, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", name, err)
	}
	reader := bytes.NewReader(data)

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(SampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("audio: decode mp3 %s: %w", name, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(SampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("audio: decode ogg %s: %w", name, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(SampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("audio: decode wav %s: %w", name, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("%w: %s (supported: .mp3, .ogg, .wav)", ErrUnsupportedFormat, name)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", name, err)
	}
	return pcm, nil
}

// DecodeFile opens and decodes path.
func DecodeFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(path, f)
}

// LoadDir returns base with every cue found in dir replaced by the decoded
// file. A cue named "jump" is looked up as jump.mp3, jump.ogg, then
// jump.wav. Missing cues keep their entry from base; a file that fails to
// decode is an error.
func LoadDir(dir string, base Bank) (Bank, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("audio: sound pack: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("audio: sound pack %s is not a directory", dir)
	}

	bank := make(Bank, len(base))
	for k, v := range base {
		bank[k] = v
	}

	for kind, stem := range cueNames {
		for _, ext := range Extensions {
			path := filepath.Join(dir, stem+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			pcm, err := DecodeFile(path)
			if err != nil {
				return nil, err
			}
			bank[kind] = pcm
			break
		}
	}
	return bank, nil
}

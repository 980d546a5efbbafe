package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sidescroller/internal/adventure"
	"github.com/vovakirdan/tui-sidescroller/internal/audio"
	"github.com/vovakirdan/tui-sidescroller/internal/core"
	"github.com/vovakirdan/tui-sidescroller/internal/platform/tui"
)

var (
	flagSounds string
	flagMute   bool
	flagVolume float64
	flagName   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the adventure",
	Long: `Start the side-scrolling adventure.

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump
  F/X              - Shoot
  Enter            - Start from the menu
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Screenshot (text + PNG)
  Q/Ctrl+C         - Quit

Sounds:
  Synthesized effects play by default. --sounds loads jump, shoot,
  collect, hit, defeat, life_lost, level_clear and game_over files
  (.wav, .ogg or .mp3) from a directory; missing ones keep the tone.

Examples:
  sidescroller play
  sidescroller play --difficulty hard
  sidescroller play --sounds ./sfx --volume 0.5
  sidescroller play --mute --log-file ~/.sidescroller/play.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command shares them
// because it plays by default.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSounds, "sounds", "", "Directory with sound files")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
	cmd.Flags().StringVar(&flagName, "name", "", "Player name for the score table (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("sidescroller", nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	sink, err := newSink(logger)
	if err != nil {
		return err
	}
	defer sink.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Timing.TickRate,
			Seed:     flagSeed,
		},
		Sink:        sink,
		Logger:      logger,
		Player:      playerName(),
		Screenshots: true,
	}

	// Keep the recorder nil, not a nil *Store, when storage is unavailable.
	if store := openStore(logger); store != nil {
		defer store.Close()
		opts.Recorder = store
	}

	if err := tui.Run(adventure.New(cfg), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newSink picks the sound output for --mute, --sounds and --volume.
func newSink(logger *log.Logger) (audio.Sink, error) {
	if flagMute {
		return audio.Null{}, nil
	}

	bank := audio.DefaultBank()
	if flagSounds != "" {
		loaded, err := audio.LoadDir(flagSounds, bank)
		if err != nil {
			return nil, err
		}
		bank = loaded
		logger.Info("sound pack loaded", "dir", flagSounds)
	}

	sink, err := audio.NewEbitenSink(bank, flagVolume)
	if err != nil {
		return nil, fmt.Errorf("%w (use --mute to play without sound)", err)
	}
	return sink, nil
}

func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// sidescroller is a side-scrolling platformer that runs in the terminal.
//
// Usage:
//
//	sidescroller              - Play (same as "sidescroller play")
//	sidescroller play         - Play the adventure
//	sidescroller scores       - Show the high score table
//	sidescroller board        - Browse high scores interactively
//	sidescroller serve        - Serve the game over SSH (and scores over HTTP)
//	sidescroller levels       - Print the level catalog
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the config
//	--seed <value>        - Seed the background star field
//	--db <path>           - Set database path (default: ~/.sidescroller/scores.db)
//	--config <path>       - Load a custom adventure.yaml
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
//	--log-json            - JSON log lines
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sidescroller/internal/config"
	"github.com/vovakirdan/tui-sidescroller/internal/logging"
	"github.com/vovakirdan/tui-sidescroller/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagLogJSON    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sidescroller",
	Short: "Side-Scrolling Adventure - a platformer in your terminal",
	Long: `Side-Scrolling Adventure is a terminal platformer. Run right, jump
over and shoot the enemies of three levels, pick up health and extra lives,
and beat the boss at the end of the keep.

Available commands:
  play     - Play the adventure (default)
  scores   - Print the high score table
  board    - Browse high scores interactively
  serve    - Start SSH server for remote play
  levels   - Print the level catalog

Examples:
  sidescroller
  sidescroller play --difficulty easy
  sidescroller serve --ssh :2222 --http :8080
  sidescroller scores`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use the config, normally 60)")
	pf.Int64Var(&flagSeed, "seed", 0, "Star field seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.sidescroller/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom adventure.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagLogJSON, "log-json", false, "Write logs as JSON lines")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger builds the command logger. Without --log-file it writes to
// fallback; a nil fallback discards, since the TUI owns the terminal.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	if fallback == nil {
		fallback = io.Discard
	}
	return logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: prefix,
		Writer: fallback,
		JSON:   flagLogJSON,
	})
}

// loadConfig resolves the adventure config, applies the difficulty preset
// and the --fps override.
func loadConfig(logger *log.Logger) (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}

	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	cfg = config.ApplyPreset(cfg, preset)
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}

	logger.Info("config loaded", "source", source, "difficulty", preset, "summary", cfg.Summary())
	return cfg, nil
}

// openStore opens the score database. Failure is not fatal for playing:
// the game runs without recording.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

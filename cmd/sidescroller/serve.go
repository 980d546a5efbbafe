package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-sidescroller/internal/adventure"
	"github.com/vovakirdan/tui-sidescroller/internal/core"
	"github.com/vovakirdan/tui-sidescroller/internal/platform/tui"
	"github.com/vovakirdan/tui-sidescroller/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH game server",
	Long: `Start an SSH server where every connection plays its own adventure.
Finished runs from all players go into one shared score table, which
--http also serves as JSON and as a PNG card.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.sidescroller/host_key

HTTP endpoints (with --http):
  GET /healthz
  GET /api/scores?limit=N
  GET /api/scores/:id
  GET /api/stats
  GET /api/board.png

Examples:
  sidescroller serve                        # SSH on :23234
  sidescroller serve --ssh :2222            # Listen on port 2222
  sidescroller serve --http :8080           # Also serve the leaderboard
  sidescroller serve --difficulty hard      # Every session plays on hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP leaderboard address (empty = disabled)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("sidescroller-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	var recorder tui.RunRecorder
	store := openStore(logger)
	if store != nil {
		defer store.Close()
		recorder = store
	}

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = flagSSHAddr
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sshCfg.TickRate = cfg.Timing.TickRate

	newGame := func() core.Game { return adventure.New(cfg) }
	server, err := tui.NewSSHServer(sshCfg, newGame, recorder, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.ListenAndServe(ctx) })

	if flagHTTPAddr != "" {
		if store == nil {
			logger.Warn("HTTP leaderboard disabled: no scores database")
		} else {
			fmt.Printf("Serving leaderboard on %s\n", flagHTTPAddr)
			router := web.NewRouter(store, adventure.ID, logger.WithPrefix("sidescroller-http"))
			g.Go(func() error { return web.ListenAndServe(ctx, flagHTTPAddr, router, logger) })
		}
	}

	return g.Wait()
}

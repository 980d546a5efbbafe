package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sidescroller/internal/adventure"
	"github.com/vovakirdan/tui-sidescroller/internal/platform/tui"
	"github.com/vovakirdan/tui-sidescroller/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse high scores interactively",
	Long:  `Opens a scrollable table of recorded runs with aggregate stats.`,
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.RunScoreboard(store, adventure.ID, adventure.Title, width, height)
}

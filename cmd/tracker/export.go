package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tracker/internal/export"
	"github.com/vovakirdan/tui-tracker/internal/game"
	"github.com/vovakirdan/tui-tracker/internal/storage"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export <player-id>",
	Short: "Export a player's history as CSV",
	Long: `Write the player's full attempt history to a CSV file.

The file lists one row per attempt with the level, whether it was answered
or given up, and the time in seconds.

Examples:
  tracker export 42
  tracker export 42 --out ./reports`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportOut, "out", "~/.tracker/exports", "Directory to write the CSV file to")
}

func runExport(cmd *cobra.Command, args []string) {
	userID, err := parseUserID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening attempts database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.History(userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	results := make([]game.AttemptResult, len(entries))
	for i, e := range entries {
		results[i] = e.Result()
	}

	path, err := export.Write(flagExportOut, userID, results)
	if errors.Is(err, export.ErrNothingToExport) {
		fmt.Printf("Player %d has no attempts to export yet.\n", userID)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d attempts to %s\n", len(results), path)
}

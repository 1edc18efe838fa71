package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tracker/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history <player-id>",
	Short: "Show a player's attempt history",
	Long: `Display all recorded attempts for the given player, oldest first,
along with the personal best.

Examples:
  tracker history 42`,
	Args: cobra.ExactArgs(1),
	Run:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) {
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

	exists, err := store.UserExists(userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !exists {
		fmt.Fprintf(os.Stderr, "Error: unknown player %d\n", userID)
		fmt.Fprintln(os.Stderr, "Run 'tracker play' to claim an ID.")
		os.Exit(1)
	}

	attempts, err := store.History(userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Attempts - Player %d\n", userID)
	fmt.Println()

	if len(attempts) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tracker play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-9s  %-9s  %s\n", "#", "Level", "Result", "Time (s)", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-9s  %s\n", "-", "-----", "------", "--------", "----")

	for i, entry := range attempts {
		result := "Gave Up"
		if entry.Completed {
			result = "Answered"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-9s  %-9.2f  %s\n", i+1, entry.Level, result, entry.Elapsed, dateStr)
	}

	fmt.Println()
	best, err := store.PersonalBest(userID)
	if err == nil && best > 0 {
		fmt.Printf("Best level: %d\n", best)
	}
}

// parseUserID parses a command-line player ID argument.
func parseUserID(arg string) (uint32, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid player ID %q", arg)
	}
	return uint32(id), nil
}

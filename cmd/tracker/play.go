package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tracker/internal/config"
	"github.com/vovakirdan/tui-tracker/internal/core"
	"github.com/vovakirdan/tui-tracker/internal/platform/tui"
	"github.com/vovakirdan/tui-tracker/internal/storage"
)

var (
	flagConfig   string
	flagUser     uint32
	flagRegister bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a tracking session.

Controls:
  Enter/Space - Start round / next level / retry
  Mouse click - Pick a ball after they stop
  L           - Give up (lost track)
  H           - Attempt history
  E           - Export history as CSV
  Q/Ctrl+C    - Quit

Without --user you are asked for a player ID on startup. An unclaimed ID is
claimed for you; a known ID resumes its personal best and history.

Examples:
  tracker play
  tracker play --user 42
  tracker play --register --user 7
  tracker play --config ./my-tracker.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().Uint32Var(&flagUser, "user", 0, "Player ID (0 = ask interactively)")
	playCmd.Flags().BoolVar(&flagRegister, "register", false, "Require the player ID to be unclaimed")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tracker"})

	// Get terminal size early for the identity prompt
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	trackerCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	settings := trackerCfg.Settings()

	// Open attempt storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open attempts database, playing without persistence", "error", err)
		store = nil
	}

	// Resolve identity
	var userID uint32
	if store != nil {
		userID, err = resolveUser(store, cfg)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if userID == 0 {
			// User aborted the identity prompt
			store.Close()
			return
		}
	}

	runErr := tui.Run(store, userID, settings, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveUser picks the player ID, either from the --user flag or via the
// interactive prompt. Returns 0 if the user aborted.
func resolveUser(store *storage.Store, cfg core.RuntimeConfig) (uint32, error) {
	if flagUser != 0 {
		exists, err := store.UserExists(flagUser)
		if err != nil {
			return 0, err
		}
		if exists && flagRegister {
			return 0, fmt.Errorf("player ID %d is already taken", flagUser)
		}
		if !exists {
			if err := store.CreateUser(flagUser); err != nil {
				return 0, err
			}
		}
		return flagUser, nil
	}

	userID, ok, err := tui.RunIdentity(store, flagRegister, cfg.ScreenW, cfg.ScreenH)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return userID, nil
}

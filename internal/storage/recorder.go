package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tracker/internal/game"
)

// Recorder binds a store to one user and satisfies the game engine's
// recorder contract. Persistence is fire-and-forget from the engine's point
// of view: write failures are logged and never interrupt play.
type Recorder struct {
	store  *Store
	userID uint32
	logger *log.Logger
}

// NewRecorder creates a recorder that writes attempts for the given user.
func NewRecorder(store *Store, userID uint32, logger *log.Logger) *Recorder {
	return &Recorder{store: store, userID: userID, logger: logger}
}

// AppendAttempt persists the attempt at the end of the user's history.
func (r *Recorder) AppendAttempt(res game.AttemptResult) {
	if err := r.store.AppendAttempt(r.userID, res); err != nil {
		r.warn("failed to record attempt", err)
	}
}

// UpdateBestIfHigher persists a new personal best if level exceeds it.
func (r *Recorder) UpdateBestIfHigher(level uint32) {
	if err := r.store.UpdateBestIfHigher(r.userID, level); err != nil {
		r.warn("failed to update personal best", err)
	}
}

func (r *Recorder) warn(msg string, err error) {
	if r.logger != nil {
		r.logger.Warn(msg, "user", r.userID, "error", err)
	}
}

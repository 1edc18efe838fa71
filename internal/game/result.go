package game

// AttemptResult is the recorded outcome of one level attempt.
// Completed means the player identified all targets; a gave-up attempt
// records the tracking stopwatch instead of the reaction stopwatch.
// Incorrect clicks produce no result at all.
type AttemptResult struct {
	Level     uint32
	Elapsed   float64 // Seconds
	Completed bool
}

// Recorder receives attempt outcomes as they resolve. The engine issues
// calls in attempt order and does not wait on or inspect persistence
// failures; implementations are expected to be best-effort.
type Recorder interface {
	// AppendAttempt adds a result to the end of the player's history.
	AppendAttempt(res AttemptResult)

	// UpdateBestIfHigher raises the player's personal best to level if it
	// exceeds the stored value.
	UpdateBestIfHigher(level uint32)
}

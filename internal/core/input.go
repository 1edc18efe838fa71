package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionStart            // Enter/Space - start the level, retry, or advance to the next one
	ActionLoseTrack        // L - give up while tracking is active
	ActionHistory          // H - open the attempt history view
	ActionExport           // E - export history to CSV
	ActionBack             // B, Escape - leave a sub-view
	ActionQuit             // Q, Ctrl+C - exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionLoseTrack:
		return "LoseTrack"
	case ActionHistory:
		return "History"
	case ActionExport:
		return "Export"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

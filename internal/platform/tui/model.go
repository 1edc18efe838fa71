package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tracker/internal/core"
	"github.com/vovakirdan/tui-tracker/internal/export"
	"github.com/vovakirdan/tui-tracker/internal/game"
	"github.com/vovakirdan/tui-tracker/internal/storage"
)

// exportDir is where CSV exports are written.
const exportDir = "~/.tracker/exports"

// Model is the Bubble Tea model for a tracking session.
type Model struct {
	engine    *game.Engine
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	userID    uint32
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	lay       layout
	best      uint32
	status    string
	history   *HistoryModel
	quitting  bool
}

// NewModel creates a session model for the given user. store may be nil, in
// which case attempts are not persisted.
func NewModel(store *storage.Store, userID uint32, settings game.Settings, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var rec game.Recorder
	var best uint32
	if store != nil {
		rec = storage.NewRecorder(store, userID, logger)
		if b, err := store.PersonalBest(userID); err == nil {
			best = b
		} else if logger != nil {
			logger.Warn("could not load personal best", "user", userID, "error", err)
		}
	}

	return Model{
		engine:    game.NewEngine(settings, cfg, rec),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		userID:    userID,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		lay:       newLayout(cfg.ScreenW, cfg.ScreenH, settings),
		best:      best,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.history != nil {
		return m.updateHistory(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// updateHistory delegates messages to the history screen while it is open.
// The engine does not tick while history is shown, so the round is paused.
func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, tickCmd(m.config.TickRate)
	}

	newModel, cmd := m.history.Update(msg)
	if hm, ok := newModel.(HistoryModel); ok {
		m.history = &hm
	}
	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		m.history = nil
	}
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionStart:
		if m.engine.StartEnabled() {
			m.status = ""
			m.engine.Start()
		}
	case core.ActionLoseTrack:
		m.engine.LoseTrack()
	case core.ActionHistory:
		m.openHistory()
	case core.ActionExport:
		m.exportHistory()
	}

	return m, nil
}

// handleMouse forwards left clicks to the engine as taps.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.engine.Phase() != game.PhaseAwaitingInput {
		return m, nil
	}

	if ax, ay, ok := m.lay.cellToArena(msg.X, msg.Y); ok {
		m.engine.Tap(ax, ay)
		// A completed level may have raised the best
		if m.engine.Phase() == game.PhaseResolved && m.engine.Outcome() == game.OutcomeCorrect {
			if done := m.engine.Config().Level - 1; done > m.best {
				m.best = done
			}
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.lay = newLayout(msg.Width, msg.Height, m.engine.Settings())
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.engine.Step()
	return m, tickCmd(m.config.TickRate)
}

// openHistory switches to the history screen.
func (m *Model) openHistory() {
	if m.store == nil {
		m.status = "History unavailable: no database"
		return
	}
	// Only between rounds; mid-round the board must stay visible
	switch m.engine.Phase() {
	case game.PhaseIdle, game.PhaseResolved:
		hm := NewHistoryModel(m.store, m.userID, m.config.ScreenW, m.config.ScreenH)
		m.history = &hm
	}
}

// exportHistory writes the attempt ledger as CSV and reports the path.
func (m *Model) exportHistory() {
	if m.store == nil {
		m.status = "Export unavailable: no database"
		return
	}
	entries, err := m.store.History(m.userID)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("could not load history for export", "user", m.userID, "error", err)
		}
		m.status = "Export failed: could not load history"
		return
	}
	results := make([]game.AttemptResult, len(entries))
	for i, e := range entries {
		results[i] = e.Result()
	}

	path, err := export.Write(exportDir, m.userID, results)
	if err != nil {
		if err == export.ErrNothingToExport {
			m.status = "Nothing to export yet"
		} else {
			m.status = fmt.Sprintf("Export failed: %v", err)
		}
		return
	}
	m.status = "Exported to " + path
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}

	m.drawFrame()
	return RenderScreen(m.screen)
}

// drawFrame renders the HUD, arena and help bar into the screen buffer.
func (m Model) drawFrame() {
	s := m.screen
	s.Clear()

	cfg := m.engine.Config()
	w := s.Width()
	h := s.Height()

	// HUD
	hud := fmt.Sprintf("Level %d   Balls %d   Targets %d", cfg.Level, cfg.TotalBalls, cfg.TargetCount)
	s.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	if m.best > 0 {
		bestText := fmt.Sprintf("Best %d", m.best)
		s.DrawTextColored(w-len(bestText), 0, bestText, core.ColorBrightCyan)
	}

	// Arena border
	s.DrawBox(0, 1, w, m.lay.fieldH+2)

	midY := m.lay.fieldY + m.lay.fieldH/2

	switch m.engine.Phase() {
	case game.PhaseIdle:
		s.DrawTextCenteredColored(midY-1, "Memorize the highlighted balls, follow them,", core.ColorWhite)
		s.DrawTextCenteredColored(midY, "then click them once they stop.", core.ColorWhite)
		s.DrawTextCenteredColored(midY+2, "Press enter to start", core.ColorBrightYellow)

	case game.PhaseReveal:
		drawBalls(s, m.lay, m.engine.Balls())
		s.DrawTextCenteredColored(1, " Memorize the highlighted balls ", core.ColorBrightYellow)

	case game.PhaseTracking:
		drawBalls(s, m.lay, m.engine.Balls())
		remaining := fmt.Sprintf(" %.1fs ", m.engine.TrackingRemaining())
		s.DrawTextCenteredColored(1, remaining, core.ColorBrightCyan)

	case game.PhaseAwaitingInput:
		drawBalls(s, m.lay, m.engine.Balls())
		found := fmt.Sprintf(" Found %d/%d - click the targets ", m.engine.Found(), cfg.TargetCount)
		s.DrawTextCenteredColored(1, found, core.ColorBrightYellow)

	case game.PhaseResolved:
		drawBalls(s, m.lay, m.engine.Balls())
		s.DrawTextCenteredColored(1, " "+m.resolvedMessage()+" ", m.resolvedColor())
	}

	// Help / status bar
	if m.status != "" {
		s.DrawTextColored(0, h-1, m.status, core.ColorBrightCyan)
	} else {
		s.DrawTextColored(0, h-1, m.helpText(), core.ColorGray)
	}
}

// resolvedMessage describes the round outcome.
func (m Model) resolvedMessage() string {
	switch m.engine.Outcome() {
	case game.OutcomeCorrect:
		return fmt.Sprintf("Correct! %.2fs - enter: %s", m.engine.LastElapsed(), m.engine.StartLabel())
	case game.OutcomeIncorrect:
		return fmt.Sprintf("Wrong ball - targets shown - enter: %s", m.engine.StartLabel())
	case game.OutcomeGaveUp:
		return fmt.Sprintf("Lost track at %.2fs - enter: %s", m.engine.LastElapsed(), m.engine.StartLabel())
	default:
		return ""
	}
}

func (m Model) resolvedColor() core.Color {
	switch m.engine.Outcome() {
	case game.OutcomeCorrect:
		return core.ColorBrightGreen
	case game.OutcomeIncorrect:
		return core.ColorBrightRed
	default:
		return core.ColorOrange
	}
}

// helpText returns the contextual key hints for the current phase.
func (m Model) helpText() string {
	switch m.engine.Phase() {
	case game.PhaseTracking:
		return "l: lost track  q: quit"
	case game.PhaseAwaitingInput:
		return "click: pick a ball  q: quit"
	case game.PhaseResolved:
		return fmt.Sprintf("enter: %s  h: history  e: export  q: quit", m.engine.StartLabel())
	default:
		return "enter: start  h: history  e: export  q: quit"
	}
}

// Run starts the Bubble Tea program for a local session.
func Run(store *storage.Store, userID uint32, settings game.Settings, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(store, userID, settings, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Taps come in as mouse clicks
	)

	_, err := p.Run()
	return err
}

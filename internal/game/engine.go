// Package game implements the ball-tracking game core: ball motion, level
// generation, difficulty progression, and the phase state machine. It contains
// pure logic with no external dependencies (especially no Bubble Tea); the
// platform drives it with a fixed simulation tick and feeds it input events.
package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-tracker/internal/core"
)

// Phase is a state of the level state machine.
type Phase int

const (
	PhaseIdle          Phase = iota // No level started yet
	PhaseSetup                      // Balls being generated (transient)
	PhaseReveal                     // Targets highlighted, balls stationary
	PhaseTracking                   // Balls moving, all visually identical
	PhaseAwaitingInput              // Motion stopped, player clicking targets
	PhaseResolved                   // Attempt finished, waiting for start command
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSetup:
		return "Setup"
	case PhaseReveal:
		return "Reveal"
	case PhaseTracking:
		return "Tracking"
	case PhaseAwaitingInput:
		return "AwaitingInput"
	case PhaseResolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

// Outcome is how the last attempt resolved.
type Outcome int

const (
	OutcomeNone      Outcome = iota
	OutcomeCorrect           // All targets identified
	OutcomeIncorrect         // A non-target was clicked
	OutcomeGaveUp            // Lost track during the tracking window
)

// Start-command labels shown by the platform layer.
const (
	LabelStart     = "start"
	LabelNextLevel = "next level"
	LabelRetry     = "retry"
)

// Settings holds the tunable game parameters (see internal/config for the
// YAML surface). All distances are arena units.
type Settings struct {
	ArenaW          float64
	ArenaH          float64
	BallRadius      float64
	RevealSeconds   float64 // How long targets stay highlighted
	TrackingSeconds float64 // How long balls move before input is requested
	Start           LevelConfig
	Progression     Progression
}

// DefaultSettings returns the standard game parameters.
func DefaultSettings() Settings {
	return Settings{
		ArenaW:          400,
		ArenaH:          240,
		BallRadius:      15.0,
		RevealSeconds:   2.5,
		TrackingSeconds: 6.0,
		Start:           DefaultStart(),
		Progression:     DefaultProgression(),
	}
}

// deferredKind identifies a scheduled phase transition.
type deferredKind int

const (
	deferNone          deferredKind = iota
	deferStartTracking              // Reveal window elapsed
	deferAwaitInput                 // Tracking window elapsed
)

// deferred is a pending one-shot transition. The epoch token is captured at
// scheduling time; if the engine's epoch has moved on by the time the
// deadline is reached, the transition is stale and must be dropped.
type deferred struct {
	kind  deferredKind
	due   uint64
	epoch uint64
}

// Engine owns the level state machine. All mutation happens through Start,
// Step, Tap, and LoseTrack; callers must serialize these on one goroutine
// (the Bubble Tea update loop does this naturally).
type Engine struct {
	settings Settings
	tickRate int
	rng      *rand.Rand
	recorder Recorder

	tick    uint64
	epoch   uint64
	phase   Phase
	outcome Outcome
	pending deferred

	cfg   LevelConfig
	balls []Ball
	found uint32

	trackingStart uint64
	trackingStop  uint64
	reactionStart uint64
	lastElapsed   float64

	startEnabled bool
	startLabel   string
}

// NewEngine creates an engine in the Idle phase with the start command armed.
func NewEngine(settings Settings, runtime core.RuntimeConfig, rec Recorder) *Engine {
	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Engine{
		settings:     settings,
		tickRate:     tickRate,
		rng:          rand.New(rand.NewSource(runtime.Seed)),
		recorder:     rec,
		phase:        PhaseIdle,
		cfg:          settings.Start,
		startEnabled: true,
		startLabel:   LabelStart,
	}
}

// enterPhase switches phases and bumps the epoch, invalidating any pending
// deferred transition scheduled under the old phase.
func (e *Engine) enterPhase(p Phase) {
	e.phase = p
	e.epoch++
	e.pending = deferred{}
}

// schedule arms a one-shot transition relative to the current tick,
// stamped with the current epoch.
func (e *Engine) schedule(kind deferredKind, afterSeconds float64) {
	e.pending = deferred{
		kind:  kind,
		due:   e.tick + e.ticksFor(afterSeconds),
		epoch: e.epoch,
	}
}

func (e *Engine) ticksFor(seconds float64) uint64 {
	return uint64(math.Round(seconds * float64(e.tickRate)))
}

func (e *Engine) seconds(ticks uint64) float64 {
	return float64(ticks) / float64(e.tickRate)
}

// Start begins the next level attempt using the current level config.
// It is a no-op while the start command is disabled (an attempt is already
// in progress). Re-enables only when the attempt resolves.
func (e *Engine) Start() {
	if !e.startEnabled {
		return
	}
	e.startEnabled = false
	e.outcome = OutcomeNone
	e.found = 0

	e.enterPhase(PhaseSetup)
	e.balls = Generate(e.cfg, e.rng, e.settings.BallRadius, e.settings.ArenaW, e.settings.ArenaH)

	// Setup completes immediately; targets stay highlighted for the
	// reveal window, then tracking begins.
	e.enterPhase(PhaseReveal)
	e.schedule(deferStartTracking, e.settings.RevealSeconds)
}

// Step advances the simulation by one tick: moves balls while tracking is
// active and fires any due deferred transition. Stale transitions (epoch
// mismatch) are discarded without effect.
func (e *Engine) Step() {
	e.tick++

	if e.phase == PhaseTracking {
		for i := range e.balls {
			e.balls[i].Advance(e.settings.ArenaW, e.settings.ArenaH)
		}
	}

	if e.pending.kind == deferNone || e.tick < e.pending.due {
		return
	}
	p := e.pending
	e.pending = deferred{}
	if p.epoch != e.epoch {
		return
	}

	switch p.kind {
	case deferStartTracking:
		e.beginTracking()
	case deferAwaitInput:
		e.beginAwaitingInput()
	}
}

// beginTracking hides the targets and starts the tracking stopwatch and the
// motion tick.
func (e *Engine) beginTracking() {
	for i := range e.balls {
		e.balls[i].Visual = VisualNeutral
	}
	e.enterPhase(PhaseTracking)
	e.trackingStart = e.tick
	e.schedule(deferAwaitInput, e.settings.TrackingSeconds)
}

// beginAwaitingInput stops motion, stops the tracking stopwatch, and starts
// the reaction stopwatch.
func (e *Engine) beginAwaitingInput() {
	e.trackingStop = e.tick
	e.enterPhase(PhaseAwaitingInput)
	e.reactionStart = e.tick
}

// LoseTrack handles the give-up signal. Honored only while tracking is
// active; the tracking stopwatch value becomes the recorded time and the
// level config is kept for a retry.
func (e *Engine) LoseTrack() {
	if e.phase != PhaseTracking {
		return
	}
	e.lastElapsed = e.seconds(e.tick - e.trackingStart)
	e.revealTargets()
	if e.recorder != nil {
		e.recorder.AppendAttempt(AttemptResult{
			Level:     e.cfg.Level,
			Elapsed:   e.lastElapsed,
			Completed: false,
		})
	}
	e.resolve(OutcomeGaveUp, LabelRetry)
}

// Tap handles a click at arena coordinates (x, y). Valid only while input
// is awaited; the first generated ball within its radius of the point wins,
// skipping balls already resolved this attempt.
func (e *Engine) Tap(x, y float64) {
	if e.phase != PhaseAwaitingInput {
		return
	}
	for i := range e.balls {
		b := &e.balls[i]
		if b.Visual == VisualCorrect || b.Visual == VisualIncorrect {
			continue
		}
		if !b.Contains(x, y) {
			continue
		}
		if b.Target {
			e.hitTarget(b)
		} else {
			e.hitNonTarget(b)
		}
		return
	}
}

// hitTarget marks a correctly identified ball and, once all targets are
// found, records the attempt using the reaction stopwatch, raises the
// personal best, and advances the difficulty curve.
func (e *Engine) hitTarget(b *Ball) {
	b.Visual = VisualCorrect
	e.found++
	if e.found < e.cfg.TargetCount {
		return
	}

	e.lastElapsed = e.seconds(e.tick - e.reactionStart)
	if e.recorder != nil {
		e.recorder.AppendAttempt(AttemptResult{
			Level:     e.cfg.Level,
			Elapsed:   e.lastElapsed,
			Completed: true,
		})
		e.recorder.UpdateBestIfHigher(e.cfg.Level)
	}
	e.cfg = e.settings.Progression.Next(e.cfg)
	e.resolve(OutcomeCorrect, LabelNextLevel)
}

// hitNonTarget marks the miss, reveals the true targets, and resolves the
// attempt without a ledger entry. The reaction stopwatch value is discarded;
// the level config is kept for a retry.
func (e *Engine) hitNonTarget(b *Ball) {
	b.Visual = VisualIncorrect
	e.revealTargets()
	e.resolve(OutcomeIncorrect, LabelRetry)
}

// revealTargets restores the highlighted state on all unresolved targets.
func (e *Engine) revealTargets() {
	for i := range e.balls {
		if e.balls[i].Target && e.balls[i].Visual == VisualNeutral {
			e.balls[i].Visual = VisualHighlighted
		}
	}
}

// resolve finishes the attempt and re-arms the start command.
func (e *Engine) resolve(outcome Outcome, label string) {
	e.outcome = outcome
	e.enterPhase(PhaseResolved)
	e.startEnabled = true
	e.startLabel = label
}

// Phase returns the current state-machine phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Outcome returns how the last attempt resolved (OutcomeNone mid-attempt).
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

// Config returns the level config of the current (or next) attempt.
func (e *Engine) Config() LevelConfig {
	return e.cfg
}

// Balls returns the live ball arena. The slice is owned by the engine;
// callers must treat it as read-only.
func (e *Engine) Balls() []Ball {
	return e.balls
}

// Found returns how many targets have been identified this attempt.
func (e *Engine) Found() uint32 {
	return e.found
}

// LastElapsed returns the stopwatch value of the last recorded resolution.
func (e *Engine) LastElapsed() float64 {
	return e.lastElapsed
}

// TrackingRemaining returns the seconds left in the tracking window,
// or zero outside the tracking phase.
func (e *Engine) TrackingRemaining() float64 {
	if e.phase != PhaseTracking || e.pending.kind != deferAwaitInput {
		return 0
	}
	if e.pending.due <= e.tick {
		return 0
	}
	return e.seconds(e.pending.due - e.tick)
}

// StartEnabled reports whether the start command is currently armed.
func (e *Engine) StartEnabled() bool {
	return e.startEnabled
}

// StartLabel returns the label the start command should carry
// ("start", "next level", or "retry").
func (e *Engine) StartLabel() string {
	return e.startLabel
}

// Settings returns the engine's game parameters.
func (e *Engine) Settings() Settings {
	return e.settings
}

package game

import (
	"time"

	"github.com/jask/gomoku/internal/board"
)

// Listener receives controller events. Callbacks run on the controller's
// goroutines with no controller lock held. They may read controller state
// but must not call Start, Pause, Resume or Stop synchronously.
type Listener interface {
	GameStarted()
	GameResumed()
	GamePaused()
	GameFinished(Result)
	TurnStarted(player int)
	MoveMade(Move)
}

// Adapter implements Listener with no-ops. Embed it and override the
// events of interest.
type Adapter struct{}

func (Adapter) GameStarted()        {}
func (Adapter) GameResumed()        {}
func (Adapter) GamePaused()         {}
func (Adapter) GameFinished(Result) {}
func (Adapter) TurnStarted(int)     {}
func (Adapter) MoveMade(Move)       {}

// Move is one placed stone.
type Move struct {
	Number  int
	Player  int
	Point   board.Point
	Elapsed time.Duration
}

// Reason explains how a game ended.
type Reason string

const (
	ReasonFive    Reason = "five"
	ReasonTimeout Reason = "timeout"
	ReasonDraw    Reason = "draw"
	ReasonForfeit Reason = "forfeit"
	ReasonAborted Reason = "aborted"
)

// Result describes a finished game. Winner is 0 when nobody won.
type Result struct {
	GameID string
	Winner int
	Reason Reason
	Moves  int
}

// State is the controller lifecycle.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)

package players

import (
	"context"

	"github.com/jask/gomoku/internal/board"
)

const HumanName = "Human"

// Human relays moves submitted by the UI.
type Human struct {
	moves chan board.Point
}

func NewHuman() *Human {
	return &Human{moves: make(chan board.Point, 1)}
}

func (h *Human) Name() string { return HumanName }

func (h *Human) NextMove(ctx context.Context, _ Position) (board.Point, error) {
	select {
	case p := <-h.moves:
		return p, nil
	case <-ctx.Done():
		return board.Point{}, ctx.Err()
	}
}

// Submit queues p for the next NextMove call. It reports false when a move
// is already pending.
func (h *Human) Submit(p board.Point) bool {
	select {
	case h.moves <- p:
		return true
	default:
		return false
	}
}

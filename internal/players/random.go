package players

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/jask/gomoku/internal/board"
)

const RandomName = "Random"

// Random plays a random empty intersection next to an existing stone.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom uses rng when given, otherwise a randomly seeded source.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Random{rng: rng}
}

func (r *Random) Name() string { return RandomName }

func (r *Random) NextMove(ctx context.Context, pos Position) (board.Point, error) {
	if err := ctx.Err(); err != nil {
		return board.Point{}, err
	}
	b := pos.Board
	if b.Count() == 0 {
		return b.Center(), nil
	}
	cands := candidates(b, 1)
	if len(cands) == 0 {
		cands = emptyPoints(b)
	}
	if len(cands) == 0 {
		return board.Point{}, errNoMoves
	}
	r.mu.Lock()
	i := r.rng.IntN(len(cands))
	r.mu.Unlock()
	return cands[i], nil
}

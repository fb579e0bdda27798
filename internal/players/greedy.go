package players

import (
	"context"
	"errors"

	"github.com/jask/gomoku/internal/board"
)

const GreedyName = "Greedy"

var errNoMoves = errors.New("no empty intersections")

// Greedy evaluates every nearby empty intersection by the runs it would
// make for itself and the runs it would deny the opponent.
type Greedy struct{}

func NewGreedy() *Greedy { return &Greedy{} }

func (g *Greedy) Name() string { return GreedyName }

// Run scores, indexed by [length][open ends].
var runScores = [6][3]int{
	1: {0, 1, 4},
	2: {0, 10, 40},
	3: {0, 100, 1_000},
	4: {0, 5_000, 50_000},
	5: {1_000_000, 1_000_000, 1_000_000},
}

func (g *Greedy) NextMove(ctx context.Context, pos Position) (board.Point, error) {
	b := pos.Board
	if b.Count() == 0 {
		return b.Center(), nil
	}
	me, opp := pos.Stone, pos.Stone.Opponent()
	cands := candidates(b, 2)
	if len(cands) == 0 {
		cands = emptyPoints(b)
	}
	if len(cands) == 0 {
		return board.Point{}, errNoMoves
	}

	// Win now, or stop the opponent from winning next move.
	for _, stone := range []board.Stone{me, opp} {
		for _, p := range cands {
			if completesFive(b, p, stone, pos.ExactFive) {
				return p, nil
			}
		}
	}

	best := cands[0]
	bestScore := -1
	center := b.Center()
	for i, p := range cands {
		if i%32 == 0 {
			if err := ctx.Err(); err != nil {
				return board.Point{}, err
			}
		}
		// Attack weighs slightly more than defence.
		score := 11*evaluate(b, p, me) + 10*evaluate(b, p, opp)
		if score > bestScore || (score == bestScore && dist(p, center) < dist(best, center)) {
			best, bestScore = p, score
		}
	}
	return best, nil
}

func completesFive(b *board.Board, p board.Point, s board.Stone, exact bool) bool {
	c := b.Clone()
	if err := c.Place(p, s); err != nil {
		return false
	}
	return c.Wins(p, exact)
}

// evaluate sums run scores over the four directions as if s were placed at p.
func evaluate(b *board.Board, p board.Point, s board.Stone) int {
	total := 0
	for _, d := range board.Directions {
		length, open := 1, 0
		for _, sign := range []int{1, -1} {
			q := board.Point{Row: p.Row + sign*d[0], Col: p.Col + sign*d[1]}
			for b.InBounds(q) && b.At(q) == s {
				length++
				q.Row += sign * d[0]
				q.Col += sign * d[1]
			}
			if b.Empty(q) {
				open++
			}
		}
		if length > 5 {
			length = 5
		}
		total += runScores[length][open]
	}
	return total
}

// candidates returns the empty points within radius of any stone.
func candidates(b *board.Board, radius int) []board.Point {
	size := b.Size()
	var out []board.Point
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			p := board.Point{Row: r, Col: c}
			if b.Empty(p) && nearStone(b, p, radius) {
				out = append(out, p)
			}
		}
	}
	return out
}

func nearStone(b *board.Board, p board.Point, radius int) bool {
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b.At(board.Point{Row: p.Row + dr, Col: p.Col + dc}) != board.Empty {
				return true
			}
		}
	}
	return false
}

func emptyPoints(b *board.Board) []board.Point {
	size := b.Size()
	var out []board.Point
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			p := board.Point{Row: r, Col: c}
			if b.Empty(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

func dist(a, b board.Point) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return max(dr, dc)
}

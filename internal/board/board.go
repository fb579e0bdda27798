package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidSize = errors.New("board size must be 15 or 19")
	ErrOutOfBounds = errors.New("point is off the board")
	ErrOccupied    = errors.New("intersection is already occupied")
)

// Sizes lists the supported intersections per side.
var Sizes = []int{15, 19}

// WinLength is the number of stones in a row that wins.
const WinLength = 5

// Stone is the content of an intersection.
type Stone uint8

const (
	Empty Stone = iota
	Black
	White
)

func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Point addresses an intersection. Row 0 is the top row as drawn.
type Point struct {
	Row int
	Col int
}

// Board is a square gomoku board.
type Board struct {
	size  int
	cells []Stone
	count int
}

func New(size int) (*Board, error) {
	if !ValidSize(size) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &Board{size: size, cells: make([]Stone, size*size)}, nil
}

// ValidSize reports whether size is one of Sizes.
func ValidSize(size int) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (b *Board) Size() int  { return b.size }
func (b *Board) Count() int { return b.count }
func (b *Board) Full() bool { return b.count == len(b.cells) }

func (b *Board) Center() Point { return Point{Row: b.size / 2, Col: b.size / 2} }

func (b *Board) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// At returns Empty for points off the board.
func (b *Board) At(p Point) Stone {
	if !b.InBounds(p) {
		return Empty
	}
	return b.cells[p.Row*b.size+p.Col]
}

func (b *Board) Empty(p Point) bool {
	return b.InBounds(p) && b.cells[p.Row*b.size+p.Col] == Empty
}

func (b *Board) Place(p Point, s Stone) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	idx := p.Row*b.size + p.Col
	if b.cells[idx] != Empty {
		return fmt.Errorf("%w: %s", ErrOccupied, p.Notation(b.size))
	}
	b.cells[idx] = s
	b.count++
	return nil
}

func (b *Board) Clone() *Board {
	out := &Board{size: b.size, cells: make([]Stone, len(b.cells)), count: b.count}
	copy(out.cells, b.cells)
	return out
}

// Directions are the four line orientations checked for runs.
var Directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Line returns the length of the run of same-coloured stones through p
// along (dRow, dCol), counting p itself. Zero if p is empty.
func (b *Board) Line(p Point, dRow, dCol int) int {
	mark := b.At(p)
	if mark == Empty {
		return 0
	}
	return 1 + b.ray(p, dRow, dCol, mark) + b.ray(p, -dRow, -dCol, mark)
}

func (b *Board) ray(p Point, dRow, dCol int, mark Stone) int {
	n := 0
	q := Point{Row: p.Row + dRow, Col: p.Col + dCol}
	for b.InBounds(q) && b.At(q) == mark {
		n++
		q.Row += dRow
		q.Col += dCol
	}
	return n
}

// Wins reports whether the stone at p is part of a winning run. With exact
// set, overlines of six or more do not count.
func (b *Board) Wins(p Point, exact bool) bool {
	for _, d := range Directions {
		n := b.Line(p, d[0], d[1])
		if n == WinLength || (!exact && n > WinLength) {
			return true
		}
	}
	return false
}

// Notation renders p as column letter plus row number counted from the
// bottom edge, e.g. "h8" for the centre of a 15x15 board.
func (p Point) Notation(size int) string {
	return fmt.Sprintf("%c%d", 'a'+rune(p.Col), size-p.Row)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// ParsePoint is the inverse of Notation.
func ParsePoint(s string, size int) (Point, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return Point{}, fmt.Errorf("parse point %q: too short", s)
	}
	col := int(s[0] - 'a')
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return Point{}, fmt.Errorf("parse point %q: %w", s, err)
	}
	p := Point{Row: size - n, Col: col}
	if p.Row < 0 || p.Row >= size || col < 0 || col >= size {
		return Point{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	return p, nil
}

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := New(size)
	require.NoError(t, err)
	return b
}

func TestNewRejectsUnsupportedSizes(t *testing.T) {
	for _, size := range []int{0, 3, 16, 20} {
		_, err := New(size)
		require.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
	}
	for _, size := range Sizes {
		b := mustBoard(t, size)
		require.Equal(t, size, b.Size())
		require.Zero(t, b.Count())
	}
}

func TestPlace(t *testing.T) {
	b := mustBoard(t, 15)

	require.NoError(t, b.Place(Point{Row: 7, Col: 7}, Black))
	require.Equal(t, Black, b.At(Point{Row: 7, Col: 7}))
	require.Equal(t, 1, b.Count())

	err := b.Place(Point{Row: 7, Col: 7}, White)
	require.ErrorIs(t, err, ErrOccupied)

	err = b.Place(Point{Row: 15, Col: 0}, White)
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.Equal(t, 1, b.Count())
}

func TestCloneIsIndependent(t *testing.T) {
	b := mustBoard(t, 15)
	require.NoError(t, b.Place(Point{Row: 0, Col: 0}, Black))

	c := b.Clone()
	require.NoError(t, c.Place(Point{Row: 1, Col: 1}, White))

	assert.Equal(t, Empty, b.At(Point{Row: 1, Col: 1}))
	assert.Equal(t, 1, b.Count())
	assert.Equal(t, 2, c.Count())
}

func TestWinsInAllDirections(t *testing.T) {
	for _, d := range Directions {
		b := mustBoard(t, 15)
		start := Point{Row: 5, Col: 5}
		var last Point
		for i := 0; i < WinLength; i++ {
			last = Point{Row: start.Row + d[0]*i, Col: start.Col + d[1]*i}
			require.NoError(t, b.Place(last, White))
		}
		assert.True(t, b.Wins(last, false), "direction %v", d)
		assert.True(t, b.Wins(start, true), "direction %v", d)
	}
}

func TestFourDoesNotWin(t *testing.T) {
	b := mustBoard(t, 15)
	for c := 0; c < 4; c++ {
		require.NoError(t, b.Place(Point{Row: 3, Col: c}, Black))
	}
	require.NoError(t, b.Place(Point{Row: 3, Col: 4}, White))
	assert.False(t, b.Wins(Point{Row: 3, Col: 3}, false))
	assert.Equal(t, 4, b.Line(Point{Row: 3, Col: 0}, 0, 1))
}

func TestOverline(t *testing.T) {
	b := mustBoard(t, 15)
	for c := 2; c < 8; c++ {
		require.NoError(t, b.Place(Point{Row: 0, Col: c}, Black))
	}
	p := Point{Row: 0, Col: 4}
	assert.True(t, b.Wins(p, false))
	assert.False(t, b.Wins(p, true))
}

func TestFull(t *testing.T) {
	b := mustBoard(t, 15)
	s := Black
	for r := 0; r < 15; r++ {
		for c := 0; c < 15; c++ {
			require.NoError(t, b.Place(Point{Row: r, Col: c}, s))
			s = s.Opponent()
		}
	}
	require.True(t, b.Full())
}

func TestNotationRoundTrip(t *testing.T) {
	b := mustBoard(t, 15)
	require.Equal(t, "h8", b.Center().Notation(15))
	require.Equal(t, "a15", Point{Row: 0, Col: 0}.Notation(15))
	require.Equal(t, "s1", Point{Row: 18, Col: 18}.Notation(19))

	p, err := ParsePoint("H8", 15)
	require.NoError(t, err)
	require.Equal(t, b.Center(), p)

	_, err = ParsePoint("z1", 15)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = ParsePoint("a", 15)
	require.Error(t, err)
}

func TestOpponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
}

package tui

import (
	"fmt"
	"strings"

	"github.com/jask/gomoku/internal/board"
)

// boardView mirrors the controller's board from MoveMade events.
type boardView struct {
	board  *board.Board
	cursor board.Point
	last   *board.Point
}

func newBoardView(size int) boardView {
	b, err := board.New(size)
	if err != nil {
		b, _ = board.New(board.Sizes[0])
	}
	return boardView{board: b, cursor: b.Center()}
}

func (v *boardView) place(p board.Point, s board.Stone) {
	if err := v.board.Place(p, s); err != nil {
		return
	}
	v.last = &p
}

func (v *boardView) moveCursor(dRow, dCol int) {
	next := board.Point{Row: v.cursor.Row + dRow, Col: v.cursor.Col + dCol}
	if v.board.InBounds(next) {
		v.cursor = next
	}
}

func (v boardView) Render(showCursor bool) string {
	size := v.board.Size()
	var b strings.Builder
	b.WriteString("   ")
	for c := 0; c < size; c++ {
		fmt.Fprintf(&b, " %c", 'a'+rune(c))
	}
	b.WriteString("\n")
	for r := 0; r < size; r++ {
		fmt.Fprintf(&b, "%3d", size-r)
		for c := 0; c < size; c++ {
			p := board.Point{Row: r, Col: c}
			b.WriteString(" ")
			b.WriteString(v.cell(p, showCursor && p == v.cursor))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v boardView) cell(p board.Point, cursor bool) string {
	var glyph string
	style := gridStyle
	switch v.board.At(p) {
	case board.Black:
		glyph, style = "●", blackStoneStyle
	case board.White:
		glyph, style = "○", whiteStoneStyle
	default:
		glyph = "·"
	}
	switch {
	case cursor:
		return cursorStyle.Render(glyph)
	case v.last != nil && *v.last == p:
		return style.Inherit(lastMoveStyle).Render(glyph)
	}
	return style.Render(glyph)
}

// width is the rendered width in cells.
func (v boardView) width() int { return 3 + 2*v.board.Size() }

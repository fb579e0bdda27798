package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jask/gomoku/internal/clock"
	"github.com/jask/gomoku/internal/database/repository"
	"github.com/jask/gomoku/internal/service"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c2e7")).Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderSummary(sum service.Summary) string {
	if len(sum.Recent) == 0 {
		return "No games recorded yet."
	}
	games := newTable("Finished", "Black", "White", "Board", "Rules", "Result", "Moves")
	for _, g := range sum.Recent {
		games.Row(
			g.FinishedAt.Local().Format("2006-01-02 15:04"),
			g.Player1,
			g.Player2,
			fmt.Sprintf("%dx%d", g.BoardSize, g.BoardSize),
			rules(g),
			result(g),
			strconv.Itoa(g.MoveCount),
		)
	}
	standings := newTable("Player", "Played", "Won", "Lost", "Drawn")
	for _, s := range sum.Standings {
		standings.Row(s.Player, strconv.Itoa(s.Played), strconv.Itoa(s.Wins), strconv.Itoa(s.Losses), strconv.Itoa(s.Draws))
	}
	return games.Render() + "\n\n" + standings.Render()
}

func rules(g repository.Game) string {
	parts := []string{limit(g.GameTimeMS) + " game", limit(g.MoveTimeMS) + " move"}
	if g.ExactFive {
		parts = append(parts, "exact five")
	}
	return strings.Join(parts, ", ")
}

func limit(ms int64) string {
	if ms <= 0 {
		return "no limit"
	}
	return clock.Format(time.Duration(ms) * time.Millisecond)
}

func result(g repository.Game) string {
	switch {
	case g.Winner == 1:
		return "black, " + g.Reason
	case g.Winner == 2:
		return "white, " + g.Reason
	default:
		return g.Reason
	}
}

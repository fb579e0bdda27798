package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// pane is a rounded box with the title set into the top border.
type pane struct {
	Title   string
	Content string
	Focused bool
}

func (p pane) Render(width, height int) string {
	width = max(width, 4)
	height = max(height, 3)

	border := colorOverlay0
	prefix := "  "
	if p.Focused {
		border = colorSuccess
		prefix = "● "
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)

	inner := width - 2
	contentWidth := inner - 2

	title := strings.TrimSpace(prefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > inner {
		titleText = " " + ansi.Truncate(title, max(1, inner-2), "") + " "
	}
	dashes := max(inner-ansi.StringWidth(titleText), 0)
	left := min(1, dashes)

	rows := make([]string, 0, height)
	rows = append(rows, borderStyle.Render("╭"+strings.Repeat("─", left))+
		titleStyle.Render(titleText)+
		borderStyle.Render(strings.Repeat("─", dashes-left)+"╮"))

	lines := strings.Split(p.Content, "\n")
	v := borderStyle.Render("│")
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(rows, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// renderBar draws a single full-width line.
func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	return style.Width(width).MaxWidth(width).Render(padRight(line, width))
}

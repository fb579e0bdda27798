package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"
	colorPink     lipgloss.Color = "#f5c2e7"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay1
)

var (
	labelStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	valueStyle    = lipgloss.NewStyle().Foreground(colorText)
	disabledStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
	focusStyle    = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	turnStyle     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	bannerStyle   = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)

	blackStoneStyle = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)
	whiteStoneStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	gridStyle       = lipgloss.NewStyle().Foreground(colorSurface1)
	lastMoveStyle   = lipgloss.NewStyle().Background(colorSurface0)
	cursorStyle     = lipgloss.NewStyle().Foreground(colorBase).Background(colorTeal)

	footerStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	statusStyle    = lipgloss.NewStyle().Foreground(colorText)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)

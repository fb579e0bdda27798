package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/jask/gomoku/internal/clock"
	"github.com/jask/gomoku/internal/game"
	"github.com/jask/gomoku/internal/players"
)

const (
	noLimit  = "No limit"
	maxLines = 500
)

// rightPane holds the player selectors, the clocks and the log box.
type rightPane struct {
	settings *game.Settings
	players  [2]*selector
	cursor   int

	gameLabels [2]string
	moveLabels [2]string
	rules      game.Snapshot
	countdown  *clock.Countdown
	gen        int
	playing    bool

	log   viewport.Model
	lines []string
}

func newRightPane(settings *game.Settings, registry *players.Registry) *rightPane {
	names := registry.Available()
	r := &rightPane{
		settings: settings,
		players: [2]*selector{
			newSelector("Black", names...),
			newSelector("White", names...),
		},
		log: viewport.New(40, 8),
	}
	snap := settings.Snapshot()
	for i, p := range r.players {
		if !p.Select(snap.Player(i+1)) && len(names) > 0 {
			r.updatePlayer(i)
		}
	}
	r.loadSettings()
	return r
}

// updatePlayer writes selector i to the settings.
func (r *rightPane) updatePlayer(i int) {
	name := r.players[i].Value()
	if i == 0 {
		r.settings.SetPlayer1(name)
	} else {
		r.settings.SetPlayer2(name)
	}
}

func (r *rightPane) step(delta int) {
	if r.players[r.cursor].Step(delta) {
		r.updatePlayer(r.cursor)
	}
}

func (r *rightPane) move(delta int) {
	n := len(r.players)
	r.cursor = ((r.cursor+delta)%n + n) % n
}

func (r *rightPane) setEnabled(enabled bool) {
	for _, p := range r.players {
		p.Disabled = !enabled
	}
}

// loadSettings resets all four clock labels to the configured budgets.
func (r *rightPane) loadSettings() {
	snap := r.settings.Snapshot()
	for i := range r.gameLabels {
		r.gameLabels[i] = budgetLabel(snap.GameTimingEnabled(), snap.GameTime)
		r.moveLabels[i] = budgetLabel(snap.MoveTimingEnabled(), snap.MoveTime)
	}
}

func budgetLabel(enabled bool, d time.Duration) string {
	if !enabled {
		return noLimit
	}
	return clock.Format(d)
}

// startCountdown replaces any running countdown with one for player and
// returns its generation.
func (r *rightPane) startCountdown(player int, rules game.Snapshot, gameLeft time.Duration, now time.Time) int {
	r.gen++
	r.rules = rules
	r.countdown = clock.New(player, gameLeft, rules.MoveTime, now)
	r.show(player, gameLeft, rules.MoveTime)
	return r.gen
}

func (r *rightPane) stopCountdown() {
	r.gen++
	r.countdown = nil
}

// tick advances the countdown of generation gen. It reports false when
// that countdown has been replaced or stopped.
func (r *rightPane) tick(gen int, now time.Time) bool {
	if gen != r.gen || r.countdown == nil {
		return false
	}
	g, m := r.countdown.Tick(now)
	r.show(r.countdown.Player(), g, m)
	return true
}

func (r *rightPane) show(player int, gameLeft, moveLeft time.Duration) {
	i := player - 1
	if i < 0 || i > 1 {
		return
	}
	if r.rules.GameTimingEnabled() {
		r.gameLabels[i] = clock.Format(gameLeft)
	}
	if r.rules.MoveTimingEnabled() {
		r.moveLabels[i] = clock.Format(moveLeft)
	}
}

func (r *rightPane) appendLog(line string) {
	r.lines = append(r.lines, line)
	if len(r.lines) > maxLines {
		r.lines = r.lines[len(r.lines)-maxLines:]
	}
	r.log.SetContent(strings.Join(r.lines, "\n"))
	r.log.GotoBottom()
}

func (r *rightPane) resize(width, height int) {
	r.log.Width = max(width, 1)
	r.log.Height = max(height, 1)
	r.log.GotoBottom()
}

// playersView renders selectors and clocks. turn marks the player to
// move, 0 for none.
func (r *rightPane) playersView(focused bool, turn int) string {
	var b strings.Builder
	for i, p := range r.players {
		if i > 0 {
			b.WriteString("\n")
		}
		marker := "  "
		if turn == i+1 {
			marker = turnStyle.Render("● ")
		}
		b.WriteString(marker + p.View(6, focused && i == r.cursor) + "\n")
		fmt.Fprintf(&b, "      %s %s   %s %s\n",
			labelStyle.Render("Game"), valueStyle.Render(padRight(r.gameLabels[i], 8)),
			labelStyle.Render("Move"), valueStyle.Render(r.moveLabels[i]))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *rightPane) logView() string { return r.log.View() }

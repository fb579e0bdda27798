package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/jask/gomoku/internal/board"
	"github.com/jask/gomoku/internal/game"
)

const unlimited = "Unlimited"

const (
	fieldSize = iota
	fieldGameTime
	fieldMoveTime
)

// settingsPanel edits the rules for the next game.
type settingsPanel struct {
	settings *game.Settings
	fields   [3]*selector
	cursor   int
}

func newSettingsPanel(settings *game.Settings) *settingsPanel {
	sizes := make([]string, 0, len(board.Sizes))
	for _, n := range board.Sizes {
		sizes = append(sizes, strconv.Itoa(n))
	}
	p := &settingsPanel{
		settings: settings,
		fields: [3]*selector{
			newSelector("Intersections (n*n)", sizes...),
			newSelector("Time per game (minutes)", "5", "10", "15", "20", "30", unlimited),
			newSelector("Time per move (seconds)", "10", "30", "60", unlimited),
		},
	}
	p.load()
	return p
}

// load selects the options matching the current settings. Values missing
// from a selector are added so configured rules survive a round trip.
func (p *settingsPanel) load() {
	snap := p.settings.Snapshot()
	selectOrAdd(p.fields[fieldSize], strconv.Itoa(snap.Size))
	selectOrAdd(p.fields[fieldGameTime], countOrUnlimited(snap.GameTime, time.Minute))
	selectOrAdd(p.fields[fieldMoveTime], countOrUnlimited(snap.MoveTime, time.Second))
}

func selectOrAdd(s *selector, value string) {
	if s.Select(value) {
		return
	}
	n := len(s.Options)
	if n > 0 && s.Options[n-1] == unlimited {
		s.Options = append(s.Options[:n-1:n-1], value, unlimited)
	} else {
		s.Options = append(s.Options, value)
	}
	s.Select(value)
}

func countOrUnlimited(d, unit time.Duration) string {
	if d <= 0 {
		return unlimited
	}
	return strconv.Itoa(int(d / unit))
}

// parseCount reads a selector value; anything that is not a number means
// no limit.
func parseCount(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func (p *settingsPanel) move(delta int) {
	p.cursor = ((p.cursor+delta)%len(p.fields) + len(p.fields)) % len(p.fields)
}

// step changes the focused field and writes it to the settings.
func (p *settingsPanel) step(delta int) error {
	f := p.fields[p.cursor]
	if !f.Step(delta) {
		return nil
	}
	return p.apply(p.cursor)
}

func (p *settingsPanel) apply(field int) error {
	v := p.fields[field].Value()
	switch field {
	case fieldSize:
		return p.settings.SetSize(parseCount(v))
	case fieldGameTime:
		p.settings.SetGameTime(time.Duration(parseCount(v)) * time.Minute)
	case fieldMoveTime:
		p.settings.SetMoveTime(time.Duration(parseCount(v)) * time.Second)
	}
	return nil
}

func (p *settingsPanel) View(focused bool) string {
	lines := make([]string, 0, len(p.fields))
	for i, f := range p.fields {
		lines = append(lines, f.View(24, focused && i == p.cursor))
	}
	return strings.Join(lines, "\n")
}

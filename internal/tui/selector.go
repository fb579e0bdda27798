package tui

// selector is a labelled combo box cycling through fixed options.
type selector struct {
	Label    string
	Options  []string
	Index    int
	Disabled bool
}

func newSelector(label string, options ...string) *selector {
	return &selector{Label: label, Options: options}
}

func (s *selector) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Index]
}

// Select moves to value and reports whether it is one of the options.
func (s *selector) Select(value string) bool {
	for i, o := range s.Options {
		if o == value {
			s.Index = i
			return true
		}
	}
	return false
}

// Step moves by delta, wrapping around. It reports whether the value
// changed; disabled selectors never change.
func (s *selector) Step(delta int) bool {
	n := len(s.Options)
	if s.Disabled || n < 2 {
		return false
	}
	s.Index = ((s.Index+delta)%n + n) % n
	return true
}

func (s *selector) View(width int, focused bool) string {
	label := padRight(s.Label, width)
	switch {
	case s.Disabled:
		return disabledStyle.Render("  " + label + " " + s.Value())
	case focused:
		return focusStyle.Render("▶ " + label + " ‹ " + s.Value() + " ›")
	default:
		return labelStyle.Render("  "+label+" ") + valueStyle.Render("‹ "+s.Value()+" ›")
	}
}

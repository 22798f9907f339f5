// Package viewport turns width observations into size actions.
package viewport

import (
	"os"

	"golang.org/x/term"

	"wtthemes/internal/state"
)

// DefaultBreakpoint is the width, in pixels, that separates small and large
// layouts.
const DefaultBreakpoint = 768

type Watcher struct {
	Breakpoint int
}

// NewWatcher returns a watcher for breakpoint, falling back to
// DefaultBreakpoint when it is not positive.
func NewWatcher(breakpoint int) Watcher {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return Watcher{Breakpoint: breakpoint}
}

// Observe maps a width to a size action. A width equal to the breakpoint
// produces no action.
func (w Watcher) Observe(width int) (state.SizeAction, bool) {
	switch {
	case width > w.Breakpoint:
		return state.SizeAction{IsSmallScreenSize: false}, true
	case width < w.Breakpoint:
		return state.SizeAction{IsSmallScreenSize: true}, true
	default:
		return state.SizeAction{}, false
	}
}

// IsSmall is the initial classification used before any observation.
func (w Watcher) IsSmall(width int) bool {
	return width < w.Breakpoint
}

// TerminalWidth reports the column count of f when it is a terminal.
func TerminalWidth(f *os.File) (int, bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, false
	}
	return width, true
}

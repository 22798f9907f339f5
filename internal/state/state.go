// Package state derives what the UI shows from the loaded catalog. Every
// change goes through Reducer.Reduce, which returns a new snapshot and leaves
// its input untouched.
package state

import (
	"errors"
	"fmt"
	"slices"

	"wtthemes/internal/domain"
)

// Colours applied before any theme has been selected.
const (
	DefaultPrimaryColour    = "#fded02"
	DefaultBackgroundColour = "#090300"
)

var ErrNoThemesInShade = errors.New("no themes in shade")

// State is one snapshot. Themes are shared between snapshots and must not be
// modified once loaded.
type State struct {
	Themes            []*domain.Theme
	FilteredThemes    []*domain.Theme
	ActiveTheme       string
	IsSmallScreenSize bool
	ThemeShade        domain.Shade
	PrimaryColour     string
	BackgroundColour  string
}

// Initial is the state before the catalog arrives.
func Initial(isSmallScreenSize bool) State {
	return State{
		Themes:            []*domain.Theme{},
		FilteredThemes:    []*domain.Theme{},
		ActiveTheme:       "",
		IsSmallScreenSize: isSmallScreenSize,
		ThemeShade:        domain.ShadeDark,
		PrimaryColour:     DefaultPrimaryColour,
		BackgroundColour:  DefaultBackgroundColour,
	}
}

// Active returns the theme named by ActiveTheme, or nil.
func (s State) Active() *domain.Theme {
	t, err := domain.FindByName(s.Themes, s.ActiveTheme)
	if err != nil {
		return nil
	}
	return t
}

// ActiveIndex is the position of ActiveTheme in FilteredThemes, or -1.
func (s State) ActiveIndex() int {
	return slices.IndexFunc(s.FilteredThemes, func(t *domain.Theme) bool {
		return t.Name == s.ActiveTheme
	})
}

// Action is one of LoadAction, SetAction, SizeAction or ShadeAction.
type Action interface {
	action()
}

// LoadAction replaces the catalog. Themes must already be sorted and
// classified.
type LoadAction struct {
	Themes []*domain.Theme
}

// SetAction previews the named theme.
type SetAction struct {
	Theme string
}

// SizeAction records whether the viewport is below the breakpoint.
type SizeAction struct {
	IsSmallScreenSize bool
}

// ShadeAction switches the shade filter.
type ShadeAction struct {
	Shade domain.Shade
}

func (LoadAction) action()  {}
func (SetAction) action()   {}
func (SizeAction) action()  {}
func (ShadeAction) action() {}

// ColourPicker chooses the title colour for a theme.
type ColourPicker interface {
	Pick(t *domain.Theme) string
}

type Reducer struct {
	picker ColourPicker
}

func NewReducer(picker ColourPicker) *Reducer {
	return &Reducer{picker: picker}
}

// Reduce applies a to s. When a Load or Shade leaves no themes in the filter
// the returned snapshot has an empty FilteredThemes and ActiveTheme, colours
// are kept, and the error wraps ErrNoThemesInShade.
func (r *Reducer) Reduce(s State, a Action) (State, error) {
	next := s

	switch a := a.(type) {
	case LoadAction:
		next.Themes = slices.Clone(a.Themes)
		if next.Themes == nil {
			next.Themes = []*domain.Theme{}
		}
		next.FilteredThemes = domain.FilterByShade(next.Themes, domain.ShadeDark)
		if len(next.FilteredThemes) == 0 {
			next.ActiveTheme = ""
			return next, fmt.Errorf("%w: %s", ErrNoThemesInShade, domain.ShadeDark)
		}
		next.ActiveTheme = next.FilteredThemes[0].Name

	case SetAction:
		next.ActiveTheme = a.Theme
		if t, err := domain.FindByName(s.Themes, a.Theme); err == nil {
			r.applyColours(&next, t)
		}

	case SizeAction:
		next.IsSmallScreenSize = a.IsSmallScreenSize

	case ShadeAction:
		next.ThemeShade = a.Shade
		switch a.Shade {
		case domain.ShadeDark, domain.ShadeLight:
			next.FilteredThemes = domain.FilterByShade(s.Themes, a.Shade)
		}
		// ShadeAny keeps whatever the last dark or light pass produced.

		if len(next.FilteredThemes) == 0 {
			next.ActiveTheme = ""
			return next, fmt.Errorf("%w: %s", ErrNoThemesInShade, a.Shade)
		}
		next.ActiveTheme = next.FilteredThemes[0].Name
		if t, err := domain.FindByName(s.Themes, next.ActiveTheme); err == nil {
			r.applyColours(&next, t)
		}

	default:
		return s, fmt.Errorf("unknown action %T", a)
	}

	return next, nil
}

func (r *Reducer) applyColours(s *State, t *domain.Theme) {
	s.PrimaryColour = r.picker.Pick(t)
	s.BackgroundColour = t.Background
}

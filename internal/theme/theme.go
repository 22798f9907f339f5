package theme

import (
	"wtthemes/internal/contrast"
	"wtthemes/internal/domain"
	"wtthemes/internal/state"
)

// Theme is the set of colours applied to the app's own chrome while a scheme
// is being previewed.
type Theme struct {
	// semantic
	Primary string
	Success string
	Error   string
	Info    string

	// text
	TextPrimary string
	TextMuted   string

	// background
	BgPrimary string

	// UI element
	BorderColor string
	SelectedBg  string
	SelectedFg  string
	HelpText    string
}

const (
	white = "#ffffff"
	black = "#000000"
)

// DefaultTheme is the chrome shown before the catalog has loaded.
func DefaultTheme() *Theme {
	return FromState(state.Initial(false))
}

// FromState derives chrome colours from the previewed colours, borrowing the
// active scheme's palette where it has one.
func FromState(s state.State) *Theme {
	return FromColours(s.PrimaryColour, s.BackgroundColour, s.Active())
}

func FromColours(primary, background string, active *domain.Theme) *Theme {
	var fg, muted, green, red, blue string
	if active != nil {
		fg, muted = active.Foreground, active.BrightBlack
		green, red, blue = active.Green, active.Red, active.Blue
	}

	return &Theme{
		Primary:     primary,
		Success:     orDefault(green, "#04B575"),
		Error:       orDefault(red, "#FF5F57"),
		Info:        orDefault(blue, "#0088FF"),
		TextPrimary: textOn(background, fg),
		TextMuted:   orDefault(muted, "#888888"),
		BgPrimary:   background,
		BorderColor: orDefault(muted, primary),
		SelectedBg:  primary,
		SelectedFg:  contrast.Readable(primary, black, black, white),
		HelpText:    orDefault(muted, "#888888"),
	}
}

// textOn keeps preferred when it is readable on background, otherwise picks
// black or white.
func textOn(background, preferred string) string {
	if r, err := contrast.Ratio(preferred, background); err == nil && r > contrast.AA {
		return preferred
	}
	return contrast.Readable(background, white, white, black)
}

func orDefault(v, def string) string {
	if _, err := contrast.Parse(v); err != nil {
		return def
	}
	return v
}

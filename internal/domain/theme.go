package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"wtthemes/internal/contrast"
)

// DarkThreshold is the contrast ratio against black below which a background
// counts as dark.
const DarkThreshold = 8.0

const black = "#000000"

var (
	ErrThemeNotFound = errors.New("theme not found")
	ErrInvalidTheme  = errors.New("invalid theme")
)

// Slot names one of the ANSI colour fields of a scheme.
type Slot string

const (
	SlotBlack  Slot = "black"
	SlotRed    Slot = "red"
	SlotGreen  Slot = "green"
	SlotYellow Slot = "yellow"
	SlotBlue   Slot = "blue"
	SlotPurple Slot = "purple"
	SlotCyan   Slot = "cyan"
	SlotWhite  Slot = "white"
)

// TitleSlots returns the fixed candidate order used for title colours. Each
// call returns a fresh slice.
func TitleSlots() []Slot {
	return []Slot{
		SlotBlack,
		SlotRed,
		SlotGreen,
		SlotYellow,
		SlotBlue,
		SlotPurple,
		SlotCyan,
		SlotWhite,
	}
}

// Theme is a Windows Terminal colour scheme. Fields the catalog carries that
// are not modelled here are kept in Extra and written back out on export.
type Theme struct {
	Name string `json:"name"`

	Black  string `json:"black,omitempty"`
	Red    string `json:"red,omitempty"`
	Green  string `json:"green,omitempty"`
	Yellow string `json:"yellow,omitempty"`
	Blue   string `json:"blue,omitempty"`
	Purple string `json:"purple,omitempty"`
	Cyan   string `json:"cyan,omitempty"`
	White  string `json:"white,omitempty"`

	BrightBlack  string `json:"brightBlack,omitempty"`
	BrightRed    string `json:"brightRed,omitempty"`
	BrightGreen  string `json:"brightGreen,omitempty"`
	BrightYellow string `json:"brightYellow,omitempty"`
	BrightBlue   string `json:"brightBlue,omitempty"`
	BrightPurple string `json:"brightPurple,omitempty"`
	BrightCyan   string `json:"brightCyan,omitempty"`
	BrightWhite  string `json:"brightWhite,omitempty"`

	Background          string `json:"background"`
	Foreground          string `json:"foreground,omitempty"`
	CursorColor         string `json:"cursorColor,omitempty"`
	SelectionBackground string `json:"selectionBackground,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`

	isDark     bool
	classified bool
}

var knownFields = []string{
	"name",
	"black", "red", "green", "yellow", "blue", "purple", "cyan", "white",
	"brightBlack", "brightRed", "brightGreen", "brightYellow",
	"brightBlue", "brightPurple", "brightCyan", "brightWhite",
	"background", "foreground", "cursorColor", "selectionBackground",
}

// Colour returns the value held in slot s.
func (t *Theme) Colour(s Slot) string {
	switch s {
	case SlotBlack:
		return t.Black
	case SlotRed:
		return t.Red
	case SlotGreen:
		return t.Green
	case SlotYellow:
		return t.Yellow
	case SlotBlue:
		return t.Blue
	case SlotPurple:
		return t.Purple
	case SlotCyan:
		return t.Cyan
	case SlotWhite:
		return t.White
	default:
		return ""
	}
}

// Validate checks that the fields the app relies on are present.
func (t *Theme) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidTheme)
	}
	if strings.TrimSpace(t.Background) == "" {
		return fmt.Errorf("%w: %s: background cannot be empty", ErrInvalidTheme, t.Name)
	}
	return nil
}

// Classify records whether the background is dark. Only the first call has an
// effect; later calls return the stored flag even if the background changed.
func (t *Theme) Classify() bool {
	if t.classified {
		return t.isDark
	}

	ratio, err := contrast.Ratio(t.Background, black)
	t.isDark = err == nil && ratio < DarkThreshold
	t.classified = true
	return t.isDark
}

// IsDark reports the flag recorded by Classify.
func (t *Theme) IsDark() bool {
	return t.isDark
}

func (t *Theme) Classified() bool {
	return t.classified
}

// Shade returns the shade the theme belongs to.
func (t *Theme) Shade() Shade {
	if t.isDark {
		return ShadeDark
	}
	return ShadeLight
}

// themeFields has Theme's layout without its JSON methods.
type themeFields Theme

func (t *Theme) UnmarshalJSON(data []byte) error {
	var fields themeFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range knownFields {
		delete(raw, k)
	}

	*t = Theme(fields)
	t.Extra = nil
	if len(raw) > 0 {
		t.Extra = raw
	}
	return nil
}

func (t Theme) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(themeFields(t))
	if err != nil {
		return nil, err
	}
	if len(t.Extra) == 0 {
		return known, nil
	}

	keys := make([]string, 0, len(t.Extra))
	for k := range t.Extra {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	buf.Write(known[:len(known)-1])
	for _, k := range keys {
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(t.Extra[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SortByName orders themes by upper-cased name. Equal names keep their
// relative order.
func SortByName(themes []*Theme) {
	slices.SortStableFunc(themes, func(a, b *Theme) int {
		return strings.Compare(strings.ToUpper(a.Name), strings.ToUpper(b.Name))
	})
}

// FindByName returns the first theme whose name matches exactly.
func FindByName(themes []*Theme, name string) (*Theme, error) {
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
}

// FilterByShade returns the themes whose dark flag matches shade. ShadeAny
// returns a copy of all themes.
func FilterByShade(themes []*Theme, shade Shade) []*Theme {
	out := make([]*Theme, 0, len(themes))
	for _, t := range themes {
		switch shade {
		case ShadeDark:
			if t.IsDark() {
				out = append(out, t)
			}
		case ShadeLight:
			if !t.IsDark() {
				out = append(out, t)
			}
		default:
			out = append(out, t)
		}
	}
	return out
}

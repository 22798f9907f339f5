package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wtthemes/internal/domain"
)

func GetShadeIcon(shade domain.Shade) string {
	switch shade {
	case domain.ShadeDark:
		return "●"
	case domain.ShadeLight:
		return "○"
	case domain.ShadeAny:
		return "◐"
	default:
		return "?"
	}
}

func GetShadeLabel(shade domain.Shade) string {
	switch shade {
	case domain.ShadeDark:
		return "dark"
	case domain.ShadeLight:
		return "light"
	case domain.ShadeAny:
		return "any"
	default:
		return "?"
	}
}

// PaletteStrip renders the eight normal slots followed by the eight bright
// ones as adjacent blocks.
func PaletteStrip(t *domain.Theme, cell int) string {
	colours := []string{
		t.Black, t.Red, t.Green, t.Yellow, t.Blue, t.Purple, t.Cyan, t.White,
		t.BrightBlack, t.BrightRed, t.BrightGreen, t.BrightYellow,
		t.BrightBlue, t.BrightPurple, t.BrightCyan, t.BrightWhite,
	}

	var b strings.Builder
	blank := strings.Repeat(" ", cell)
	for _, c := range colours {
		if c == "" {
			b.WriteString(blank)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c)).Render(blank))
	}
	return b.String()
}

// Truncate shortens s to width cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

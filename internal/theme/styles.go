package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Separator lipgloss.Style

	// tui
	Page         lipgloss.Style
	Paragraph    lipgloss.Style
	Link         lipgloss.Style
	TUIHelp      lipgloss.Style
	Pane         lipgloss.Style
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	Message      lipgloss.Style
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	bg := lipgloss.Color(t.BgPrimary)

	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			PaddingLeft(1).
			PaddingRight(1),

		Cell: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BorderColor)),

		// tui
		Page: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)).
			Background(bg),

		Paragraph: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)),

		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Underline(true),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpText)),

		Pane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(0, 1),

		ListItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)),

		ListSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			Bold(true),

		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)).
			Italic(true),
	}
}

// Swatch renders a small block filled with colour.
func Swatch(colour string, width int) string {
	if width <= 0 {
		width = 2
	}
	block := make([]rune, width)
	for i := range block {
		block[i] = ' '
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(colour)).
		Render(string(block))
}

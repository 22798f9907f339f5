package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wtthemes/internal/display"
	"wtthemes/internal/domain"
	"wtthemes/internal/palette"
)

const (
	listWidth    = 32
	chromeHeight = 12 // header, tabs, message and help
	minListRows  = 3
)

// renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderShadeTabs())
	b.WriteString("\n")

	if m.uiMode == searchingMode {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	} else if m.query != "" {
		b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("search: %q (esc to clear)", m.query)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderBody())
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(m.styles.Message.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.TUIHelp.Render(m.help.View(m.keys)))

	return m.styles.Page.Width(m.width).Render(b.String())
}

func (m Model) renderHeader() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Windows Terminal Themes"))
	b.WriteString("\n")

	intro := "Themes for Windows Terminal. To add one, open settings, copy a theme into " +
		"schemes and then reference its name in profiles."
	credit := "The themes come from " + m.styles.Link.Render("iTerm2 Color Schemes") + ", so thanks to them."
	download := fmt.Sprintf("Press s to download all the themes | %s",
		m.styles.Link.Render("github.com/atomcorp/themes"))

	paragraph := m.styles.Paragraph.Width(max(20, m.width-2))
	b.WriteString(paragraph.Render(intro))
	b.WriteString("\n")
	b.WriteString(paragraph.Render(credit))
	b.WriteString("\n")
	b.WriteString(paragraph.Render(download))

	return b.String()
}

func (m Model) renderShadeTabs() string {
	shades := []domain.Shade{domain.ShadeDark, domain.ShadeLight, domain.ShadeAny}

	tabs := make([]string, len(shades))
	for i, s := range shades {
		label := fmt.Sprintf("%s %s", display.GetShadeIcon(s), display.GetShadeLabel(s))
		if s == m.state.ThemeShade {
			tabs[i] = m.styles.Header.Render(label)
		} else {
			tabs[i] = m.styles.Cell.Render(label)
		}
	}

	count := m.styles.Subtitle.Render(fmt.Sprintf("%d of %d themes", len(m.visibleThemes()), len(m.state.Themes)))
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(tabs, " "), "  ", count)
}

func (m Model) renderBody() string {
	rows := max(minListRows, m.height-chromeHeight)

	if m.state.IsSmallScreenSize {
		// stacked: a short list above the preview
		list := m.renderList(min(rows/2, 8), max(20, m.width-4))
		return lipgloss.JoinVertical(lipgloss.Left, list, m.renderPreview(max(20, m.width-4)))
	}

	list := m.renderList(rows, listWidth)
	preview := m.renderPreview(max(20, m.width-listWidth-8))
	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", preview)
}

func (m Model) renderList(rows, width int) string {
	themes := m.visibleThemes()
	pane := m.styles.Pane.Width(width)

	if len(themes) == 0 {
		switch {
		case m.loading:
			return pane.Render("Loading themes...")
		case m.query != "":
			return pane.Render("No matching themes.")
		default:
			return pane.Render("No themes loaded.")
		}
	}

	// keep the active theme inside the window
	active := max(0, m.activeIndex(themes))
	start := 0
	if active >= rows {
		start = active - rows + 1
	}
	end := min(len(themes), start+rows)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		t := themes[i]
		name := display.Truncate(t.Name, width-4)
		line := fmt.Sprintf("%s %s", display.GetShadeIcon(t.Shade()), name)
		if t.Name == m.state.ActiveTheme {
			lines = append(lines, m.styles.ListSelected.Render("> "+line))
		} else {
			lines = append(lines, m.styles.ListItem.Render("  "+line))
		}
	}

	return pane.Render(strings.Join(lines, "\n"))
}

func (m Model) renderPreview(width int) string {
	pane := m.styles.Pane.Width(width)

	t := m.state.Active()
	if t == nil {
		if m.loading {
			return pane.Render("Fetching the catalog...")
		}
		return pane.Render("No themes loaded.")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(t.Name))
	b.WriteString("  ")
	b.WriteString(m.styles.Subtitle.Render(display.GetShadeLabel(t.Shade())))
	b.WriteString("\n\n")
	b.WriteString(renderTerminal(t, width-2))
	b.WriteString("\n\n")
	b.WriteString(display.PaletteStrip(t, 2))
	b.WriteString("\n\n")

	slots := palette.AccessibleSlots(t)
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = string(s)
	}
	if len(names) == 0 {
		names = append(names, "none")
	}
	b.WriteString(m.styles.Info.Render("readable title colours: " + strings.Join(names, ", ")))
	b.WriteString("\n\n")

	if snippet, err := json.MarshalIndent(t, "", "  "); err == nil {
		b.WriteString(m.styles.Paragraph.Render(string(snippet)))
	}

	return pane.Render(b.String())
}

// renderTerminal draws a fake shell session in the theme's own colours.
func renderTerminal(t *domain.Theme, width int) string {
	bg := lipgloss.Color(t.Background)
	fg := t.Foreground
	if fg == "" {
		fg = t.White
	}

	text := func(colour, s string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colour)).Background(bg).Render(s)
	}

	lines := []string{
		text(t.Green, "user@host") + text(fg, ":") + text(t.Blue, "~/projects") + text(fg, "$ ls"),
		text(t.Blue, "src  ") + text(t.Cyan, "link  ") + text(t.Green, "run.sh  ") + text(fg, "README.md"),
		text(t.Green, "user@host") + text(fg, ":") + text(t.Blue, "~/projects") + text(fg, "$ git status"),
		text(fg, "On branch ") + text(t.Purple, "main"),
		text(t.Red, "  modified:   ") + text(t.Yellow, "theme.json"),
		text(t.BrightBlack, "# nothing added to commit"),
	}

	line := lipgloss.NewStyle().Background(bg).Width(max(10, width))
	for i, l := range lines {
		lines[i] = line.Render(l)
	}
	return strings.Join(lines, "\n")
}

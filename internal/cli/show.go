package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"wtthemes/internal/contrast"
	"wtthemes/internal/display"
	"wtthemes/internal/domain"
	"wtthemes/internal/palette"
	"wtthemes/internal/theme"
)

var showCmd = &cobra.Command{
	Use:   "show [theme-name]",
	Short: "Show a theme's palette",
	Long: `Show every colour of a theme with its contrast against the background,
and pick a title colour the way the browser does.

The name must match exactly; use 'wtthemes list' to find it.

Examples:
  wtthemes show Dracula
  wtthemes show "Solarized Light"`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	themes, err := loadThemes(cmd)
	if err != nil {
		return err
	}

	t, err := domain.FindByName(themes, args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'wtthemes list' to see available themes)", err)
	}

	displayThemeDetail(cmd.OutOrStdout(), t, palette.NewPicker(nil), cliStyles())
	return nil
}

func displayThemeDetail(w io.Writer, t *domain.Theme, picker *palette.Picker, styles *theme.Styles) {
	title := picker.Pick(t)

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Title.Render(t.Name))
	fmt.Fprintln(w, styles.Subtitle.Render(fmt.Sprintf("%s %s, background %s",
		display.GetShadeIcon(t.Shade()), display.GetShadeLabel(t.Shade()), t.Background)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, display.PaletteStrip(t, 3))
	fmt.Fprintln(w)

	for _, slot := range domain.TitleSlots() {
		colour := t.Colour(slot)
		if colour == "" {
			fmt.Fprintf(w, "  %-8s %s\n", slot, styles.Subtitle.Render("(unset)"))
			continue
		}

		marker := ""
		if palette.Accessible(t, slot) {
			marker = styles.Success.Render("✓")
		}
		fmt.Fprintf(w, "  %-8s %s %-8s %s %s\n", slot, theme.Swatch(colour, 4), colour, formatRatio(colour, t.Background), marker)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Separator.Render(strings.Repeat("─", 40)))
	fmt.Fprintf(w, "Title colour: %s %s\n", theme.Swatch(title, 4), title)
}

func formatRatio(fg, bg string) string {
	r, err := contrast.Ratio(fg, bg)
	if err != nil {
		return "   -   "
	}
	return fmt.Sprintf("%5.2f:1", r)
}

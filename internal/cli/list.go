package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"wtthemes/internal/display"
	"wtthemes/internal/domain"
	"wtthemes/internal/theme"
)

var listShade string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List themes in the catalog",
	Long: `List the themes in the catalog, sorted by name.

A theme is dark when its background contrasts with black by less than 8:1.

Examples:
  wtthemes list
  wtthemes list --shade dark
  wtthemes list --shade light --base-path ./themes`,
	Aliases: []string{"ls"},
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listShade, "shade", "any", "Filter by shade (dark, light, any)")
}

func runList(cmd *cobra.Command, args []string) error {
	shade, err := domain.ParseShade(listShade)
	if err != nil {
		return err
	}

	themes, err := loadThemes(cmd)
	if err != nil {
		return err
	}

	styles := cliStyles()
	themes = domain.FilterByShade(themes, shade)

	if len(themes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Info.Render("No themes found."))
		return nil
	}

	displayThemesTable(cmd.OutOrStdout(), themes, styles)
	return nil
}

func displayThemesTable(w io.Writer, themes []*domain.Theme, styles *theme.Styles) {
	// header
	header := fmt.Sprintf("%s %s %s %s",
		styles.Header.Render(fmt.Sprintf("%-40s", "Name")),
		styles.Header.Render(fmt.Sprintf("%-7s", "Shade")),
		styles.Header.Render(fmt.Sprintf("%-10s", "Background")),
		styles.Header.Render("Palette"),
	)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, styles.Separator.Render(strings.Repeat("─", 100)))

	for _, t := range themes {
		printThemeRow(w, t, styles)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d theme(s)\n", len(themes))
}

func printThemeRow(w io.Writer, t *domain.Theme, styles *theme.Styles) {
	shade := fmt.Sprintf("%s %s", display.GetShadeIcon(t.Shade()), display.GetShadeLabel(t.Shade()))

	fmt.Fprintf(w, "%s %s %s %s\n",
		styles.Cell.Render(fmt.Sprintf("%-40s", display.Truncate(t.Name, 40))),
		styles.Cell.Render(fmt.Sprintf("%-7s", shade)),
		styles.Cell.Render(fmt.Sprintf("%-10s", t.Background)),
		display.PaletteStrip(t, 1),
	)
}

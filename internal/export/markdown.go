package export

import (
	"fmt"
	"io"

	"wtthemes/internal/domain"
)

// WriteMarkdown lists themes grouped by shade, dark first.
func WriteMarkdown(w io.Writer, themes []*domain.Theme) error {
	if _, err := fmt.Fprintf(w, "# Windows Terminal Themes\n\n%d themes\n\n", len(themes)); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}

	byShade := make(map[domain.Shade][]*domain.Theme)
	for _, t := range themes {
		byShade[t.Shade()] = append(byShade[t.Shade()], t)
	}

	for _, shade := range []domain.Shade{domain.ShadeDark, domain.ShadeLight} {
		group := byShade[shade]
		if len(group) == 0 {
			continue
		}

		fmt.Fprintf(w, "## %s (%d)\n\n", shadeHeading(shade), len(group))
		fmt.Fprintln(w, "| Name | Background | Foreground |")
		fmt.Fprintln(w, "|------|------------|------------|")
		for _, t := range group {
			fmt.Fprintf(w, "| %s | `%s` | `%s` |\n", t.Name, t.Background, orDash(t.Foreground))
		}
		fmt.Fprintln(w)
	}

	return nil
}

func shadeHeading(s domain.Shade) string {
	if s == domain.ShadeDark {
		return "Dark"
	}
	return "Light"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

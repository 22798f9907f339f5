package cli

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"wtthemes/internal/domain"
	"wtthemes/internal/export"
)

var (
	exportOutput string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole theme catalog",
	Long: `Export every theme in the catalog.

Supported formats:
  - json: the catalog as Windows Terminal schemes (default)
  - csv: one row per theme, for spreadsheets
  - markdown: a readable table grouped by shade

With no --output, JSON is saved as windows-terminal-themes.json in the
download directory and the other formats are written to stdout. Use
--output - to send JSON to stdout.

Examples:
  wtthemes export
  wtthemes export --output schemes.json
  wtthemes export --format csv --output themes.csv
  wtthemes export --format markdown`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (- for stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, csv, markdown)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	themes, err := loadThemes(cmd)
	if err != nil {
		return err
	}

	styles := cliStyles()

	path, err := exportThemes(appFs, cmd.OutOrStdout(), format, exportOutput, cfg.DownloadDir, themes)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if path != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Success.Render(fmt.Sprintf("✓ Exported %d themes to %s", len(themes), path)))
	}
	return nil
}

// exportThemes writes themes and returns the file written, or "" for stdout.
func exportThemes(fs afero.Fs, stdout io.Writer, format export.ExportFormat, output, downloadDir string, themes []*domain.Theme) (string, error) {
	switch {
	case output == "-":
		return "", export.Write(stdout, format, themes)

	case output == "" && format == export.FormatJSON:
		return export.SaveDownload(fs, downloadDir, themes)

	case output == "":
		return "", export.Write(stdout, format, themes)
	}

	f, err := fs.Create(output)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := export.Write(f, format, themes); err != nil {
		return "", err
	}
	return output, nil
}

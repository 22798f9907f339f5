package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wtthemes/internal/logging"
	"wtthemes/internal/palette"
	"wtthemes/internal/state"
	"wtthemes/internal/tui"
	"wtthemes/internal/viewport"
)

var tuiCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive theme browser",
	Long: `Launch the interactive browser. This is also what runs when wtthemes is
called without a subcommand.

Keyboard shortcuts:
  ↑/k ↓/j     Previous / next theme
  g / G       First / last theme
  tab         Cycle dark, light and any
  d / l / a   Dark, light or any shade
  /           Search by name
  s           Save all themes to the download directory
  r           Reload the catalog
  ?           Toggle help
  q           Quit

Logs go to the configured log file so they do not disturb the screen.`,
	Aliases: []string{"tui"},
	RunE:    runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, _ := viewport.TerminalWidth(os.Stdout)

	model := tui.NewModel(tui.Options{
		Loader:        newLoader(logger),
		Reducer:       state.NewReducer(palette.NewPicker(nil)),
		Watcher:       viewport.NewWatcher(cfg.SmallScreenColumns),
		Logger:        logger,
		Fs:            appFs,
		DownloadDir:   cfg.DownloadDir,
		InitialWidth:  width,
		StrictCatalog: cfg.StrictCatalog,
		FetchTimeout:  cfg.FetchTimeout,
	})

	// create, run tui
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"wtthemes/internal/catalog"
	"wtthemes/internal/config"
	"wtthemes/internal/domain"
	"wtthemes/internal/logging"
	"wtthemes/internal/theme"
)

var (
	// global flags
	flagConfig   string
	flagBasePath string
	flagLogLevel string

	// settings resolved before each command
	cfg *config.Config

	// appFs backs file catalogs and exports
	appFs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "wtthemes",
	Short: "Browse and download Windows Terminal colour schemes",
	Long: `wtthemes loads the Windows Terminal colour scheme catalog, previews each
scheme in your terminal and saves the whole catalog as
windows-terminal-themes.json, ready to paste into your settings.

Run without a subcommand to open the interactive browser.

Examples:
  wtthemes
  wtthemes list --shade light
  wtthemes show "Dracula"
  wtthemes export --format markdown --output themes.md`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings()
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: ~/.wtthemes/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagBasePath, "base-path", "", "URL or directory holding colour-schemes.json")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loads config and applies flag overrides
func loadSettings() error {
	if flagConfig != "" {
		config.SetConfigFile(flagConfig)
	}

	loaded, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if flagBasePath != "" {
		loaded.BasePath = flagBasePath
	}
	if flagLogLevel != "" {
		if _, err := logging.ParseLevel(flagLogLevel); err != nil {
			return err
		}
		loaded.LogLevel = flagLogLevel
	}

	cfg = loaded
	return nil
}

func newLoader(logger zerolog.Logger) *catalog.Loader {
	return catalog.NewLoader(cfg.BasePath, logger, catalog.WithFs(appFs))
}

// fetches the catalog once for non-interactive commands
func loadThemes(cmd *cobra.Command) ([]*domain.Theme, error) {
	logger, err := logging.NewConsole(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.FetchTimeout)
		defer cancel()
	}

	themes, err := newLoader(logger).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme catalog: %w", err)
	}
	return themes, nil
}

func cliStyles() *theme.Styles {
	return theme.NewStyles(theme.DefaultTheme())
}

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"wtthemes/internal/catalog"
	"wtthemes/internal/domain"
	"wtthemes/internal/export"
)

// Message types for async operations

// catalogLoadedMsg carries a prepared catalog
type catalogLoadedMsg struct {
	themes []*domain.Theme
}

// catalogFailedMsg is sent when the catalog could not be fetched or parsed
type catalogFailedMsg struct {
	err error
}

// downloadSavedMsg reports where the catalog was written
type downloadSavedMsg struct {
	path string
}

// errMsg wraps errors from async operations
type errMsg struct {
	err error
}

func (e errMsg) Error() string {
	return e.err.Error()
}

// Bubble Tea commands for async operations

// loadCatalogCmd fetches the catalog; a zero timeout means none
func loadCatalogCmd(ctx context.Context, loader *catalog.Loader, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		themes, err := loader.Load(ctx)
		if err != nil {
			return catalogFailedMsg{err: err}
		}
		return catalogLoadedMsg{themes: themes}
	}
}

// saveDownloadCmd writes the themes it is given, which the caller takes from
// the current state
func saveDownloadCmd(fs afero.Fs, dir string, themes []*domain.Theme) tea.Cmd {
	return func() tea.Msg {
		path, err := export.SaveDownload(fs, dir, themes)
		if err != nil {
			return errMsg{err}
		}
		return downloadSavedMsg{path: path}
	}
}

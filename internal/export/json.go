package export

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"wtthemes/internal/domain"
)

// WriteJSON writes themes as a pretty-printed JSON array with two-space
// indentation. Unknown scheme fields are written back; the dark flag is not.
func WriteJSON(w io.Writer, themes []*domain.Theme) error {
	if themes == nil {
		themes = []*domain.Theme{}
	}

	data, err := json.MarshalIndent(themes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode themes: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write themes: %w", err)
	}
	return nil
}

// SaveDownload writes the catalog to dir/DownloadFileName and returns the
// path written.
func SaveDownload(fs afero.Fs, dir string, themes []*domain.Theme) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(dir, DownloadFileName)
	f, err := fs.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, themes); err != nil {
		return "", err
	}
	return path, nil
}

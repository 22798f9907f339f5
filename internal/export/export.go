// Package export writes the loaded catalog out in the supported formats. The
// output is always built from the themes passed in, never from a cached copy.
package export

import (
	"io"

	"wtthemes/internal/domain"
)

// Write dispatches to the writer for format.
func Write(w io.Writer, format ExportFormat, themes []*domain.Theme) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, themes)
	case FormatMarkdown:
		return WriteMarkdown(w, themes)
	default:
		return WriteJSON(w, themes)
	}
}

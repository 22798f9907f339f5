package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"wtthemes/internal/domain"
	"wtthemes/internal/palette"
)

func WriteCSV(w io.Writer, themes []*domain.Theme) error {
	writer := csv.NewWriter(w)

	header := []string{"Name", "Shade", "Background", "Foreground", "Accessible Title Slots"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range themes {
		slots := palette.AccessibleSlots(t)
		names := make([]string, len(slots))
		for i, s := range slots {
			names[i] = string(s)
		}

		row := []string{
			t.Name,
			strings.ToLower(t.Shade().String()),
			t.Background,
			t.Foreground,
			strings.Join(names, ";"),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

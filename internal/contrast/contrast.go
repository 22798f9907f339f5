// Package contrast computes WCAG 2.x relative luminance and contrast ratios
// for hex colour strings such as "#1d1f21" or "#fff".
package contrast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// AA is the minimum ratio for normal-size text under WCAG AA.
const AA = 4.5

var ErrInvalidColour = errors.New("invalid colour")

// Parse accepts "#rrggbb" and "#rgb", with or without the leading '#'.
func Parse(hex string) (colorful.Color, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return colorful.Color{}, fmt.Errorf("%w: empty", ErrInvalidColour)
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColour, hex)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColour, hex)
	}
	return c, nil
}

// Luminance returns the relative luminance of hex in [0, 1].
func Luminance(hex string) (float64, error) {
	c, err := Parse(hex)
	if err != nil {
		return 0, err
	}

	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// Ratio returns the contrast ratio between a and b in [1, 21]. The result is
// symmetric in its arguments.
func Ratio(a, b string) (float64, error) {
	la, err := Luminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := Luminance(b)
	if err != nil {
		return 0, err
	}

	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

// Readable picks whichever of the candidates has the highest contrast against
// background. Unparseable candidates are skipped; if none parse, fallback is
// returned.
func Readable(background, fallback string, candidates ...string) string {
	best := fallback
	bestRatio := 0.0
	for _, c := range candidates {
		r, err := Ratio(c, background)
		if err != nil {
			continue
		}
		if r > bestRatio {
			best, bestRatio = c, r
		}
	}
	return best
}

package domain

import (
	"errors"
	"strings"
)

// Shade selects which part of the catalog is listed.
type Shade string

const (
	ShadeLight Shade = "LIGHT"
	ShadeDark  Shade = "DARK"
	ShadeAny   Shade = "ANY"
)

func (s Shade) String() string {
	return string(s)
}

func (s Shade) IsValid() bool {
	switch s {
	case ShadeLight, ShadeDark, ShadeAny:
		return true
	}
	return false
}

// ParseShade accepts any casing of light, dark or any.
func ParseShade(s string) (Shade, error) {
	shade := Shade(strings.ToUpper(strings.TrimSpace(s)))
	if !shade.IsValid() {
		return "", errors.New("invalid shade: must be light, dark, or any")
	}
	return shade, nil
}

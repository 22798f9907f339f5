package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wtthemes/internal/domain"
)

func TestExactMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    int
	}{
		{name: "exact match lowercase", pattern: "dracula", text: "dracula", want: 100},
		{name: "exact match mixed case", pattern: "Dracula", text: "dracula", want: 100},
		{name: "exact match with spaces", pattern: "solarized dark", text: "Solarized Dark", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.pattern, tt.text))
		})
	}
}

func TestNoMatch(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
	}{
		{pattern: "", text: "dracula"},
		{pattern: "dracula", text: ""},
		{pattern: "xyz", text: "dracula"},
		{pattern: "aluc", text: "dracula"},
		{pattern: "draculaa", text: "dracula"},
	}

	for _, tt := range tests {
		assert.Equal(t, 0, Match(tt.pattern, tt.text), "%q in %q", tt.pattern, tt.text)
	}
}

func TestMatch_Ordering(t *testing.T) {
	prefix := Match("sol", "Solarized Dark")
	scattered := Match("sdk", "Solarized Dark")
	inner := Match("dark", "Solarized Dark")

	assert.Greater(t, prefix, 0)
	assert.Greater(t, inner, 0)
	assert.Greater(t, prefix, scattered)
	assert.LessOrEqual(t, prefix, 100)
}

func TestMatchThemes(t *testing.T) {
	themes := []*domain.Theme{
		{Name: "Builtin Solarized Dark"},
		{Name: "Dracula"},
		{Name: "Solarized Dark"},
		{Name: "Monokai"},
	}

	results := MatchThemes("solarized", themes, DefaultThreshold)
	assert.Len(t, results, 2)
	assert.Equal(t, "Solarized Dark", results[0].Theme.Name)
	assert.Equal(t, "Builtin Solarized Dark", results[1].Theme.Name)

	all := MatchThemes("  ", themes, DefaultThreshold)
	assert.Len(t, all, 4)
	assert.Equal(t, "Builtin Solarized Dark", all[0].Theme.Name)

	assert.Empty(t, MatchThemes("zzz", themes, DefaultThreshold))
}

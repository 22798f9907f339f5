// Package fuzzy ranks theme names against a typed search query.
package fuzzy

import (
	"slices"
	"strings"
	"unicode"

	"wtthemes/internal/domain"
)

// DefaultThreshold is the minimum score a name needs to be listed.
const DefaultThreshold = 40

type MatchResult struct {
	Theme *domain.Theme
	Score int
}

// Match scores text against pattern in [0, 100]. Every pattern rune must
// appear in text, in order; otherwise the score is 0.
func Match(pattern, text string) int {
	if pattern == "" || text == "" {
		return 0
	}

	pattern = strings.ToLower(pattern)
	text = strings.ToLower(text)

	if pattern == text {
		return 100
	}

	positions := matchPositions([]rune(pattern), []rune(text))
	if positions == nil {
		return 0
	}

	return min(max(score([]rune(text), positions), 0), 100)
}

func matchPositions(pattern, text []rune) []int {
	if len(pattern) > len(text) {
		return nil
	}

	positions := make([]int, 0, len(pattern))
	p := 0
	for i := 0; i < len(text) && p < len(pattern); i++ {
		if text[i] == pattern[p] {
			positions = append(positions, i)
			p++
		}
	}

	if p < len(pattern) {
		return nil
	}
	return positions
}

func score(text []rune, positions []int) int {
	s := 40.0

	// coverage of the name
	s += float64(len(positions)) / float64(len(text)) * 25.0

	if positions[0] == 0 {
		s += 15.0
	}

	// longest consecutive run
	run, longest := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}
	s += float64(longest) / float64(len(positions)) * 20.0

	// matches that start a word
	boundaries := 0
	for _, pos := range positions {
		if pos == 0 || !unicode.IsLetter(text[pos-1]) && !unicode.IsDigit(text[pos-1]) {
			boundaries++
		}
	}
	if boundaries > 0 {
		s += 5.0
	}

	// gaps between matched runes
	gaps := 0
	for i := 1; i < len(positions); i++ {
		gaps += positions[i] - positions[i-1] - 1
	}
	s -= float64(gaps) * 2.0

	return int(s)
}

// MatchThemes returns the themes whose names score at least threshold,
// best first. Ties keep the input order. An empty pattern returns every theme.
func MatchThemes(pattern string, themes []*domain.Theme, threshold int) []MatchResult {
	pattern = strings.TrimSpace(pattern)

	results := make([]MatchResult, 0, len(themes))
	for _, t := range themes {
		if pattern == "" {
			results = append(results, MatchResult{Theme: t, Score: 100})
			continue
		}
		if s := Match(pattern, t.Name); s >= threshold {
			results = append(results, MatchResult{Theme: t, Score: s})
		}
	}

	slices.SortStableFunc(results, func(a, b MatchResult) int {
		return b.Score - a.Score
	})
	return results
}

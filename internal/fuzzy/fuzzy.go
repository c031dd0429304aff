// Package fuzzy suggests the closest known option name for a mistyped one.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds candidates within an edit distance of an input.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting at most maxDistance edits.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // single characters match almost anything
	}
}

// Match is one candidate accepted by a Matcher.
type Match struct {
	Value    string
	Distance int
	Prefix   int // length of the prefix shared with the input
}

// FindBest returns the closest candidate, or "" when none is close enough.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within the distance limit, best first.
// Exact matches are not suggestions and are skipped.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}
	input = strings.ToLower(input)

	var matches []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		d := m.distance(input, lower)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: d,
			Prefix:   commonPrefix(input, lower),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		if matches[i].Prefix != matches[j].Prefix {
			return matches[i].Prefix > matches[j].Prefix
		}
		return matches[i].Value < matches[j].Value
	})
	return matches
}

// Distance is the Levenshtein distance between a and b.
func Distance(a, b string) int {
	return NewMatcher(len(a) + len(b)).distance(a, b)
}

// distance gives up early once the result must exceed maxDistance.
func (m *Matcher) distance(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b)-len(a) > m.maxDistance {
		return m.maxDistance + 1
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

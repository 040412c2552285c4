// Package filter ranks candidate lines against a query with fuzzy matching.
// Matched rune positions are kept so the picker (or the editor) can layer
// sub-match highlights on top of the listing groups.
package filter

import (
	"sort"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Match is one ranked candidate.
type Match struct {
	Line string
	// Index is the candidate's position in the input slice.
	Index int
	// Positions are the matched rune indexes within Line, ascending.
	Positions []int
	Score     int
}

// Filter returns every candidate matching pattern, best score first.
// An empty pattern matches nothing; callers wanting "show everything"
// skip filtering instead.
func Filter(pattern string, lines []string) []Match {
	if pattern == "" {
		return nil
	}
	results := fuzzy.Find(pattern, lines)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Line:      r.Str,
			Index:     r.Index,
			Positions: runePositions(r.Str, r.MatchedIndexes),
			Score:     r.Score,
		}
	}
	return matches
}

// runePositions converts the matcher's byte offsets into rune indexes, so
// position-based highlighting stays aligned on multi-byte lines (icon
// glyphs, non-ASCII paths).
func runePositions(line string, byteOffsets []int) []int {
	if len(byteOffsets) == 0 {
		return nil
	}
	positions := make([]int, len(byteOffsets))
	// Offsets arrive ascending; count runes incrementally instead of
	// rescanning the prefix per offset.
	prevOffset, prevRunes := 0, 0
	for i, off := range byteOffsets {
		if off < prevOffset {
			prevOffset, prevRunes = 0, 0
		}
		prevRunes += utf8.RuneCountInString(line[prevOffset:off])
		prevOffset = off
		positions[i] = prevRunes
	}
	return positions
}

// Top returns the best n matches for pattern.
func Top(pattern string, lines []string, n int) []Match {
	matches := Filter(pattern, lines)
	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// Session holds a candidate set across query edits, the dynamic-filtering
// mode the picker drives. It is not safe for concurrent use; the picker's
// update loop is single-threaded.
type Session struct {
	lines []string

	lastPattern string
	lastMatches []Match
}

// NewSession starts a session over the given candidates.
func NewSession(lines []string) *Session {
	return &Session{lines: lines}
}

// Add appends freshly produced candidates and invalidates the cached query.
func (s *Session) Add(lines []string) {
	s.lines = append(s.lines, lines...)
	s.lastPattern = ""
	s.lastMatches = nil
}

// Len reports the candidate count.
func (s *Session) Len() int {
	return len(s.lines)
}

// Lines returns the raw candidate set.
func (s *Session) Lines() []string {
	return s.lines
}

// Query re-filters on a pattern change and returns the ranked matches.
// Repeating the previous pattern reuses the cached result.
func (s *Session) Query(pattern string) []Match {
	if pattern == s.lastPattern && s.lastMatches != nil {
		return s.lastMatches
	}
	s.lastPattern = pattern
	s.lastMatches = Filter(pattern, s.lines)
	return s.lastMatches
}

// Indices returns the input positions of the given matches, ascending.
// The editor uses these to map ranked lines back to its source listing.
func Indices(matches []Match) []int {
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	sort.Ints(out)
	return out
}

// Package breaker implements the recursive break-pattern decomposition of
// spec.md §4.2: split on configured separators and re-check each half.
package breaker

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/morphspell/internal/casehandler"
	"github.com/npillmayer/morphspell/internal/config"
)

func tracer() tracing.Trace {
	return tracing.Select("morphspell/breaker")
}

// maxRecursionDepth caps the recursion induced by the break table, per
// spec.md §5, to forestall pathological dictionaries.
const maxRecursionDepth = 10

// Decomposer recursively splits a word on the configured break patterns
// and re-checks each half through the case handler.
type Decomposer struct {
	Case  *casehandler.Handler
	Table config.BreakTable
}

// Check implements break_decomposer (spec.md §4.2).
func (d *Decomposer) Check(s string) bool {
	return d.check(s, 0)
}

func (d *Decomposer) check(s string, depth int) bool {
	if depth > maxRecursionDepth {
		tracer().Errorf("break decomposition exceeded depth %d for a word fragment, rejecting", maxRecursionDepth)
		return false
	}

	if d.Case.Check(s) {
		return true
	}

	for _, pat := range d.Table.StartWordBreaks {
		if pat == "" {
			continue
		}
		if strings.HasPrefix(s, pat) {
			if d.check(s[len(pat):], depth+1) {
				return true
			}
		}
	}

	for _, pat := range d.Table.EndWordBreaks {
		if pat == "" {
			continue
		}
		if strings.HasSuffix(s, pat) {
			if d.check(s[:len(s)-len(pat)], depth+1) {
				return true
			}
		}
	}

	for _, pat := range d.Table.MiddleWordBreaks {
		if pat == "" {
			continue
		}
		i := findInteriorOccurrence(s, pat)
		if i < 0 {
			continue
		}
		left := s[:i]
		right := s[i+len(pat):]
		if d.check(left, depth+1) && d.check(right, depth+1) {
			return true
		}
	}

	return false
}

// findInteriorOccurrence returns the leftmost index i such that s[i:i+len(pat)]
// == pat, 0 < i, and i+len(pat) < len(s) -- a strictly interior occurrence
// with both halves non-empty (spec.md §4.2 step 4). Returns -1 if none.
func findInteriorOccurrence(s, pat string) int {
	for i := 1; i+len(pat) < len(s); i++ {
		if strings.HasPrefix(s[i:], pat) {
			return i
		}
	}
	return -1
}

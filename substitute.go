package morphspell

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/morphspell/internal/config"
)

// applyInputSubstitution implements spec §4.1 step 2: the substitution
// table lists (pattern, replacement) pairs; leftmost longest-match
// scanning replaces occurrences, honoring "^"/"$" anchors that restrict a
// pattern to the start or end of the string.
func applyInputSubstitution(s string, table []config.Replacement) string {
	if len(table) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		bestLen := -1
		bestRepl := ""
		for _, r := range table {
			core, anchorStart, anchorEnd := splitAnchors(r.Pattern)
			if core == "" {
				continue
			}
			if anchorStart && i != 0 {
				continue
			}
			if !strings.HasPrefix(s[i:], core) {
				continue
			}
			if anchorEnd && i+len(core) != len(s) {
				continue
			}
			if len(core) > bestLen {
				bestLen = len(core)
				bestRepl = r.Replacement
			}
		}
		if bestLen > 0 {
			b.WriteString(bestRepl)
			i += bestLen
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 {
			size = 1
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

func splitAnchors(pattern string) (core string, anchorStart, anchorEnd bool) {
	core = pattern
	if strings.HasPrefix(core, "^") {
		anchorStart = true
		core = core[1:]
	}
	if strings.HasSuffix(core, "$") && core != "" {
		anchorEnd = true
		core = core[:len(core)-1]
	}
	return core, anchorStart, anchorEnd
}

// Package casehandler implements the casing classification, dispatch, and
// case-normalization strategies of spec.md §4.3: all_upper_strategy,
// init_cap_strategy, German sharp-s expansion, apostrophe title-casing,
// and the KEEPCASE/FORBIDDENWORD/WARN flag gates.
package casehandler

import (
	"strings"

	"github.com/npillmayer/morphspell/internal/config"
	"github.com/npillmayer/morphspell/internal/flagset"
	"github.com/npillmayer/morphspell/internal/stem"
	"github.com/npillmayer/morphspell/internal/unicodefold"
)

// maxSharpSSubstitutions bounds the sharp-s enumeration search to 2^5 = 32
// probes per word (spec.md §4.3.3, §9).
const maxSharpSSubstitutions = 5

// Handler wires together the stem checker, the locale folder, and the
// dictionary's configuration knobs to answer the full case-aware lookup
// question for one word.
type Handler struct {
	Stem *stem.Checker
	Fold *unicodefold.Folder
	Aff  *config.AffData
}

// assert panics on an invariant the classifier is supposed to guarantee
// can never be violated -- an unrecognized casing class is a bug in this
// package, not a caller error (spec.md §7).
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// Check answers the case-aware lookup for one already-broken word segment,
// implementing the dispatch table of spec.md §4.3.2 plus the flag gates of
// §4.3.5.
func (h *Handler) Check(s string) bool {
	switch c := Classify(s); c {
	case Camel, Pascal:
		fs, ok := h.Stem.Check(s)
		if !ok {
			return false
		}
		return h.applyGates(fs)
	case Small:
		if fs, ok := h.Stem.Check(s); ok {
			return h.applyGates(fs)
		}
		// A plain lowercase word may still name a stem that the
		// dictionary only lists capitalized (a proper noun). Try the
		// title-cased form as a fallback, same as the reference
		// long-standing behavior, discarding a hit that demands its
		// own stored casing.
		if fs, ok := h.Stem.Check(h.Fold.ToTitle(s)); ok && !h.keepCase(fs) {
			return h.applyGates(fs)
		}
		return false
	case AllCapital:
		return h.allUpperStrategy(s)
	case InitCapital:
		fs, _, ok := h.initCapStrategy(s)
		if !ok {
			return false
		}
		return h.applyGates(fs)
	default:
		assert(false, "casehandler: unrecognized casing class")
		return false
	}
}

// applyGates implements spec.md §4.3.5, run on every successful stem_check
// result regardless of which strategy produced it.
func (h *Handler) applyGates(fs flagset.FlagSet) bool {
	if h.Aff == nil {
		return true
	}
	if h.Aff.HasForbiddenWordFlag() && fs.Contains(h.Aff.ForbiddenWordFlag) {
		return false
	}
	if h.Aff.ForbidWarn && h.Aff.WarnFlag != "" && fs.Contains(h.Aff.WarnFlag) {
		return false
	}
	return true
}

// keepCase reports whether fs demands the stem's stored casing -- a hit
// obtained only via case folding must be discarded when this holds.
func (h *Handler) keepCase(fs flagset.FlagSet) bool {
	return h.Aff.HasKeepCaseFlag() && fs.Contains(h.Aff.KeepCaseFlag)
}

// allUpperStrategy implements spec.md §4.3.3.
func (h *Handler) allUpperStrategy(s string) bool {
	if fs, ok := h.Stem.Check(s); ok {
		return h.applyGates(fs)
	}
	if strings.ContainsRune(s, '\'') {
		if fs, ok := h.Stem.Check(h.apostropheFold(s)); ok && !h.keepCase(fs) {
			return h.applyGates(fs)
		}
	}
	if h.Aff != nil && h.Aff.CheckSharps && strings.Contains(s, "SS") {
		lower := h.Fold.ToLower(s)
		for _, variant := range sharpSVariants(lower) {
			if fs, ok := h.Stem.Check(variant); ok && !h.keepCase(fs) {
				return h.applyGates(fs)
			}
		}
		title := h.Fold.ToTitle(lower)
		for _, variant := range sharpSVariants(title) {
			if fs, ok := h.Stem.Check(variant); ok && !h.keepCase(fs) {
				return h.applyGates(fs)
			}
		}
	}
	fs, _, ok := h.initCapStrategy(s)
	if !ok {
		return false
	}
	return h.applyGates(fs)
}

// initCapStrategy implements spec.md §4.3.4. It returns the matched flag
// set, whether the match was obtained via a folded (non-verbatim) form,
// and whether any match survived (the keepcase discard of step 4 is
// applied here, continuing the search rather than failing outright).
func (h *Handler) initCapStrategy(s string) (flagset.FlagSet, bool, bool) {
	if fs, ok := h.Stem.Check(s); ok {
		return fs, false, true
	}
	candidates := make([]string, 0, 3)
	candidates = append(candidates, h.Fold.ToLower(s))
	candidates = append(candidates, h.Fold.ToTitle(s))
	candidates = append(candidates, h.localeAlternates(s)...)
	for _, cand := range candidates {
		fs, ok := h.Stem.Check(cand)
		if !ok {
			continue
		}
		if h.keepCase(fs) {
			continue
		}
		return fs, true, true
	}
	return flagset.FlagSet{}, false, false
}

// apostropheFold implements spec.md §4.3.3 step 2: title-case the part up
// to and including the apostrophe, title-case the part after, concatenate.
// If the apostrophe is the final code point, title-case the whole string.
func (h *Handler) apostropheFold(s string) string {
	runes := unicodefold.Runes(s)
	apPos := -1
	for i, r := range runes {
		if r == '\'' {
			apPos = i
			break
		}
	}
	if apPos < 0 {
		return s
	}
	if apPos == len(runes)-1 {
		return h.Fold.ToTitle(s)
	}
	head := string(runes[:apPos+1])
	tail := string(runes[apPos+1:])
	return h.Fold.ToTitle(head) + h.Fold.ToTitle(tail)
}

// localeAlternates implements spec.md §4.3.4 step 3: Turkish/Azerbaijani
// dotted/dotless I alternates and the Dutch IJ/Ĳ digraph alternate.
func (h *Handler) localeAlternates(s string) []string {
	runes := unicodefold.Runes(s)
	if len(runes) == 0 {
		return nil
	}
	var out []string
	if h.Fold.Turkic() {
		switch runes[0] {
		case 'I':
			alt := append([]rune{'İ'}, runes[1:]...)
			out = append(out, h.Fold.ToLower(string(alt)))
		case 'İ':
			alt := append([]rune{'I'}, runes[1:]...)
			out = append(out, h.Fold.ToLower(string(alt)))
		}
	}
	if h.Fold.Dutch() {
		switch {
		case len(runes) >= 2 && runes[0] == 'I' && runes[1] == 'J':
			alt := append([]rune{'Ĳ'}, runes[2:]...)
			out = append(out, h.Fold.ToLower(string(alt)))
		case runes[0] == 'Ĳ' || runes[0] == 'ĳ':
			alt := append([]rune{'I', 'J'}, runes[1:]...)
			out = append(out, h.Fold.ToLower(string(alt)))
		}
	}
	return out
}

// sharpSVariants enumerates every way of replacing an "ss" occurrence in s
// with "ß", bounded to the first maxSharpSSubstitutions occurrences
// (spec.md §4.3.3, §9): at most 2^5 = 32 probes.
func sharpSVariants(s string) []string {
	runes := unicodefold.Runes(s)
	var positions []int
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] == 's' && runes[i+1] == 's' {
			positions = append(positions, i)
			i++
		}
	}
	if len(positions) > maxSharpSSubstitutions {
		positions = positions[:maxSharpSSubstitutions]
	}
	n := len(positions)
	variants := make([]string, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		var b strings.Builder
		last := 0
		for i, pos := range positions {
			b.WriteString(string(runes[last:pos]))
			if mask&(1<<uint(i)) != 0 {
				b.WriteRune('ß')
			} else {
				b.WriteString("ss")
			}
			last = pos + 2
		}
		b.WriteString(string(runes[last:]))
		variants = append(variants, b.String())
	}
	return variants
}

// Package stem implements the raw dictionary probe plus prefix-only and
// suffix-only affix stripping described in spec.md §4.4.
package stem

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/morphspell/internal/affix"
	"github.com/npillmayer/morphspell/internal/config"
	"github.com/npillmayer/morphspell/internal/dictionary"
	"github.com/npillmayer/morphspell/internal/flagset"
	"github.com/npillmayer/morphspell/internal/unicodefold"
)

func tracer() tracing.Trace {
	return tracing.Select("morphspell/stem")
}

// Checker bundles the immutable, shared-read-only structures the stem
// check needs: the dictionary, the affix index, and the flags of AffData
// that gate which affix entries apply outside compounding.
type Checker struct {
	Dict  *dictionary.Index
	Affix *affix.Index
	Aff   *config.AffData
}

// Check performs stem_check(w) (spec.md §4.4): a direct probe, then a
// prefix-only strip, then a suffix-only strip. It returns the matched
// flag set and true on success.
func (c *Checker) Check(w string) (flagset.FlagSet, bool) {
	if c.Dict == nil || c.Affix == nil {
		tracer().Errorf("stem checker used with a nil dictionary or affix index, word %q rejected", w)
		return flagset.FlagSet{}, false
	}
	if fs, ok := c.Dict.Lookup(w); ok {
		return fs, true
	}
	if fs, ok := c.checkPrefix(w); ok {
		return fs, true
	}
	if fs, ok := c.checkSuffix(w); ok {
		return fs, true
	}
	return flagset.FlagSet{}, false
}

// skipEntry reports whether e must be excluded from the single-affix
// path per spec.md §4.4 steps 2-3: compound-only, need-affix, and
// circumfix-marked entries never apply outside compounding.
func (c *Checker) skipEntry(e affix.Entry) bool {
	if c.Aff == nil {
		return false
	}
	if c.Aff.CompoundOnlyInFlag != "" && e.ContFlags.Contains(c.Aff.CompoundOnlyInFlag) {
		return true
	}
	if c.Aff.NeedAffixFlag != "" && e.ContFlags.Contains(c.Aff.NeedAffixFlag) {
		return true
	}
	if c.Aff.CircumfixFlag != "" && e.ContFlags.Contains(c.Aff.CircumfixFlag) {
		return true
	}
	return false
}

// checkPrefix scans candidate prefixes of w from empty upward, per
// spec.md §4.4 step 2. aff_len runs from 0 to len(w) in rune units.
func (c *Checker) checkPrefix(w string) (flagset.FlagSet, bool) {
	runes := unicodefold.Runes(w)
	for affLen := 0; affLen <= len(runes); affLen++ {
		a := string(runes[:affLen])
		for _, e := range c.Affix.Lookup(affix.Prefix, a) {
			if c.skipEntry(e) {
				continue
			}
			candidate := e.Strip + string(runes[affLen:])
			candidateRunes := unicodefold.Runes(candidate)
			if !e.Condition.MatchPrefix(candidateRunes) {
				continue
			}
			fs, ok := c.Dict.Lookup(candidate)
			if !ok {
				continue
			}
			if !fs.Contains(e.Flag) {
				continue
			}
			return fs, true
		}
	}
	return flagset.FlagSet{}, false
}

// checkSuffix scans candidate suffixes of w from empty upward, per
// spec.md §4.4 step 3.
func (c *Checker) checkSuffix(w string) (flagset.FlagSet, bool) {
	runes := unicodefold.Runes(w)
	n := len(runes)
	for affLen := 0; affLen <= n; affLen++ {
		a := string(runes[n-affLen:])
		for _, e := range c.Affix.Lookup(affix.Suffix, a) {
			if c.skipEntry(e) {
				continue
			}
			var b strings.Builder
			b.WriteString(string(runes[:n-affLen]))
			b.WriteString(e.Strip)
			candidate := b.String()
			candidateRunes := unicodefold.Runes(candidate)
			if !e.Condition.MatchSuffix(candidateRunes) {
				continue
			}
			fs, ok := c.Dict.Lookup(candidate)
			if !ok {
				continue
			}
			if !fs.Contains(e.Flag) {
				continue
			}
			return fs, true
		}
	}
	return flagset.FlagSet{}, false
}

// Package config holds the per-dictionary configuration knobs the core
// consults (spec.md §3, "Aff_Data"). It is a plain, loader-populated
// struct with no parsing logic of its own -- parsing `.aff`/`.dic` files
// is explicitly out of scope for this core (spec.md §1).
package config

import "github.com/npillmayer/morphspell/internal/flagset"

// Replacement is one (pattern, replacement) row of the input substitution
// table (spec.md §4.1 step 2). Pattern may carry a leading "^" or trailing
// "$" anchor restricting the match to the start or end of the string.
type Replacement struct {
	Pattern     string
	Replacement string
}

// BreakTable holds the three break-pattern lists consulted by the break
// decomposer (spec.md §4.2), in file order.
type BreakTable struct {
	StartWordBreaks  []string
	EndWordBreaks    []string
	MiddleWordBreaks []string
}

// AffData is the set of per-dictionary knobs the core recognizes.
type AffData struct {
	ForbiddenWordFlag  flagset.Flag
	WarnFlag           flagset.Flag
	ForbidWarn         bool
	KeepCaseFlag       flagset.Flag
	NeedAffixFlag      flagset.Flag
	CircumfixFlag      flagset.Flag
	CompoundOnlyInFlag flagset.Flag

	CheckSharps bool
	LocaleAff   string

	InputSubstrReplacer []Replacement
	BreakTable          BreakTable
}

// HasForbiddenWordFlag reports whether a forbidden-word flag is configured
// at all; an unset flag never matches any stem's flag set.
func (a *AffData) HasForbiddenWordFlag() bool { return a != nil && a.ForbiddenWordFlag != "" }

// HasKeepCaseFlag reports whether a keepcase flag is configured.
func (a *AffData) HasKeepCaseFlag() bool { return a != nil && a.KeepCaseFlag != "" }

// Package morphspell implements the core of a morphological spell-checking
// engine compatible with the affix-dictionary file format popularized by
// Hunspell: given a pre-built dictionary index, affix index and
// configuration, it answers whether a surface form is a valid word.
//
// Parsing of `.aff`/`.dic` files, suggestion generation, and compound-word
// decomposition are out of scope; this package only implements the
// checking pipeline described by the accompanying specification.
package morphspell

import (
	"github.com/npillmayer/morphspell/internal/affix"
	"github.com/npillmayer/morphspell/internal/breaker"
	"github.com/npillmayer/morphspell/internal/casehandler"
	"github.com/npillmayer/morphspell/internal/config"
	"github.com/npillmayer/morphspell/internal/dictionary"
	"github.com/npillmayer/morphspell/internal/flagset"
	"github.com/npillmayer/morphspell/internal/stem"
	"github.com/npillmayer/morphspell/internal/unicodefold"
)

// Flag is an opaque marker attached to stems and affix entries.
type Flag = flagset.Flag

// FlagSet is an immutable, ordered set of Flags with sub-linear membership.
type FlagSet = flagset.FlagSet

// NewFlagSet builds a FlagSet from an unordered flag list.
func NewFlagSet(flags ...Flag) FlagSet { return flagset.New(flags...) }

// ParseFlagSet builds a FlagSet from a whitespace-delimited flag string.
func ParseFlagSet(s string) FlagSet { return flagset.Parse(s) }

// AffixKind distinguishes prefix rows from suffix rows.
type AffixKind = affix.Kind

const (
	Prefix = affix.Prefix
	Suffix = affix.Suffix
)

// AffixEntry is one row of the affix table (spec §3).
type AffixEntry = affix.Entry

// Condition is a compiled affix match condition.
type Condition = affix.Condition

// ParseCondition compiles a condition pattern such as "[^aeiou]y".
func ParseCondition(pattern string) (Condition, error) { return affix.ParseCondition(pattern) }

// AffixIndex is the two append-keyed multimaps of affix entries.
type AffixIndex = affix.Index

// NewAffixIndex builds an empty AffixIndex ready to be populated by a
// loader.
func NewAffixIndex() *AffixIndex { return affix.NewIndex() }

// DictionaryIndex maps a canonical-case stem to its FlagSet.
type DictionaryIndex = dictionary.Index

// NewDictionaryIndex builds an empty DictionaryIndex ready to be populated
// by a loader.
func NewDictionaryIndex() *DictionaryIndex { return dictionary.NewIndex() }

// Replacement is one (pattern, replacement) row of the input substitution
// table.
type Replacement = config.Replacement

// BreakTable holds the three break-pattern lists in file order.
type BreakTable = config.BreakTable

// AffData is the set of per-dictionary configuration knobs the core
// recognizes (spec §3).
type AffData = config.AffData

// Dictionary bundles a loaded DictionaryIndex, AffixIndex and AffData into
// a ready-to-query engine. All fields are immutable once built and safe
// for concurrent read-only use by multiple goroutines (spec §5).
type Dictionary struct {
	dict       *DictionaryIndex
	affixes    *AffixIndex
	aff        *AffData
	fold       *unicodefold.Folder
	decomposer *breaker.Decomposer
}

// NewDictionary wires a loaded DictionaryIndex, AffixIndex and AffData into
// a queryable Dictionary. A nil aff is treated as &AffData{}, a dictionary
// with no special flags configured.
func NewDictionary(dict *DictionaryIndex, affixes *AffixIndex, aff *AffData) *Dictionary {
	if aff == nil {
		aff = &AffData{}
	}
	fold := unicodefold.NewFolder(aff.LocaleAff)
	checker := &stem.Checker{Dict: dict, Affix: affixes, Aff: aff}
	handler := &casehandler.Handler{Stem: checker, Fold: fold, Aff: aff}
	return &Dictionary{
		dict:       dict,
		affixes:    affixes,
		aff:        aff,
		fold:       fold,
		decomposer: &breaker.Decomposer{Case: handler, Table: aff.BreakTable},
	}
}

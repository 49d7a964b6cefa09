package morphspell

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Verdict is the result of a spell query.
type Verdict uint8

const (
	// Bad means the word is not recognized as correctly spelled.
	Bad Verdict = iota
	// Good means the word is accepted.
	Good
)

// Good reports whether v is the Good verdict.
func (v Verdict) Good() bool { return v == Good }

func (v Verdict) String() string {
	if v == Good {
		return "GOOD"
	}
	return "BAD"
}

func verdict(good bool) Verdict {
	if good {
		return Good
	}
	return Bad
}

// maxWordLength is the input length cap of spec §4.1 step 1, measured in
// code points against this module's canonical UTF-8 internal encoding
// (spec §9 design notes).
const maxWordLength = 100

// Spell answers whether word is spelled correctly, implementing
// spell_entrypoint (spec §4.1). It is total: every input produces GOOD or
// BAD, never an error.
func (d *Dictionary) Spell(word string) Verdict {
	if utf8.RuneCountInString(word) >= maxWordLength {
		return Bad
	}

	if d.aff != nil {
		word = applyInputSubstitution(word, d.aff.InputSubstrReplacer)
	}

	word = strings.TrimFunc(word, unicode.IsSpace)
	if word == "" {
		return Good
	}

	abbreviation := strings.HasSuffix(word, ".")
	word = strings.TrimRight(word, ".")
	if word == "" {
		return Good
	}

	if isNumericForm(word) {
		return Good
	}

	if d.decomposer.Check(word) {
		return Good
	}

	if abbreviation {
		return verdict(d.decomposer.Check(word + "."))
	}

	return Bad
}

// Package unicodefold provides the locale-aware case-folding primitives
// used by the case handler: to_lower, to_upper, to_title, plus code-point
// iteration, honoring the Turkish, Greek, Dutch and German quirks spec.md
// §4.5 calls out. Folding is delegated to golang.org/x/text/cases, which
// already implements the locale-sensitive special casing rules (Turkish
// dotless/dotted I, Greek final sigma) that a hand-rolled unicode.ToUpper
// loop would get wrong.
package unicodefold

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("morphspell/unicodefold")
}

// Folder performs case folding for one dictionary's locale.
type Folder struct {
	locale language.Tag
	lower  cases.Caser
	upper  cases.Caser
	title  cases.Caser

	turkic bool // Turkish or Azerbaijani: dotted/dotless I distinction
	dutch  bool // Dutch: IJ/ij digraph handling
	german bool // German: ß/SS handling (checksharps is a separate knob)
}

// NewFolder builds a Folder for the given locale identifier, e.g. "de_DE",
// "tr_TR", "az_AZ", "nl_NL". An empty or unrecognized locale falls back to
// language-neutral Unicode default casing (spec.md §4.5).
func NewFolder(localeAff string) *Folder {
	tag := parseLocale(localeAff)
	base, _ := tag.Base()
	code := base.String()
	return &Folder{
		locale: tag,
		lower:  cases.Lower(tag),
		upper:  cases.Upper(tag),
		title:  cases.Title(tag),
		turkic: code == "tr" || code == "az",
		dutch:  code == "nl",
		german: code == "de",
	}
}

func parseLocale(localeAff string) language.Tag {
	if localeAff == "" {
		return language.Und
	}
	normalized := strings.ReplaceAll(localeAff, "_", "-")
	if idx := strings.Index(normalized, "."); idx >= 0 {
		normalized = normalized[:idx] // strip an encoding suffix like ".UTF-8"
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		tracer().Errorf("unrecognized locale %q, falling back to Unicode default: %v", localeAff, err)
		return language.Und
	}
	return tag
}

// Turkic reports whether this locale requires the Turkish/Azerbaijani
// dotted-I / dotless-I alternate probes of spec.md §4.3.4.
func (f *Folder) Turkic() bool { return f != nil && f.turkic }

// Dutch reports whether this locale should recognize the IJ/Ĳ digraph as a
// single casing position (spec.md §4.3.4, §4.5).
func (f *Folder) Dutch() bool { return f != nil && f.dutch }

// ToLower folds s to lowercase per the configured locale.
func (f *Folder) ToLower(s string) string {
	if f == nil {
		return strings.ToLower(s)
	}
	return f.lower.String(f.NFC(s))
}

// ToUpper folds s to uppercase per the configured locale. When German
// final-sigma-equivalent rules matter (ß -> SS) golang.org/x/text/cases
// already performs the expansion; ẞ, if already present in s, is preserved
// by the underlying case tables rather than collapsed.
func (f *Folder) ToUpper(s string) string {
	if f == nil {
		return strings.ToUpper(s)
	}
	return f.upper.String(f.NFC(s))
}

// ToTitle title-cases s per the configured locale (first cased rune of
// each word upper, rest lower).
func (f *Folder) ToTitle(s string) string {
	if f == nil {
		return cases.Title(language.Und).String(s)
	}
	return f.title.String(f.NFC(s))
}

// NFC normalizes s to Unicode Normalization Form C so combining-mark
// variants of the same word compare and fold identically.
func (f *Folder) NFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// Runes returns the code points of s. Both the byte-string and wide
// code-unit encodings named in spec.md §3 reduce, at the boundary, to a
// slice of runes for the algorithms in §4, which do not depend on
// code-unit width (spec.md §9).
func Runes(s string) []rune { return []rune(s) }

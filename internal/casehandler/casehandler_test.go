package casehandler

import (
	"testing"

	"github.com/npillmayer/morphspell/internal/affix"
	"github.com/npillmayer/morphspell/internal/config"
	"github.com/npillmayer/morphspell/internal/dictionary"
	"github.com/npillmayer/morphspell/internal/flagset"
	"github.com/npillmayer/morphspell/internal/stem"
	"github.com/npillmayer/morphspell/internal/unicodefold"
)

func newHandler(t *testing.T, aff *config.AffData, seed func(*dictionary.Index)) *Handler {
	t.Helper()
	dict := dictionary.NewIndex()
	seed(dict)
	if aff == nil {
		aff = &config.AffData{}
	}
	checker := &stem.Checker{Dict: dict, Affix: affix.NewIndex(), Aff: aff}
	return &Handler{
		Stem: checker,
		Fold: unicodefold.NewFolder(aff.LocaleAff),
		Aff:  aff,
	}
}

func TestCamelIsDirectLookupOnly(t *testing.T) {
	h := newHandler(t, nil, func(d *dictionary.Index) {
		d.Add("cat", flagset.New())
	})
	if !h.Check("cat") {
		t.Errorf("cat should be recognized directly")
	}
	if h.Check("caT") {
		t.Errorf("caT is CAMEL-classified and must only try a direct, case-exact lookup")
	}
}

func TestSmallFallsBackToTitleCaseForProperNouns(t *testing.T) {
	h := newHandler(t, nil, func(d *dictionary.Index) {
		d.Add("cats", flagset.New())
		d.Add("Paris", flagset.New())
	})
	if !h.Check("paris") {
		t.Errorf("paris misses directly but should match the capitalized stem Paris via the title-case fallback")
	}
	// A plain lowercase miss with no matching capitalized stem stays BAD.
	if h.Check("dogs") {
		t.Errorf("dogs has no stem at all and must stay BAD")
	}
}

func TestAllUpperMatchesLowercasedStem(t *testing.T) {
	h := newHandler(t, nil, func(d *dictionary.Index) {
		d.Add("paris", flagset.New())
	})
	if !h.Check("PARIS") {
		t.Errorf("ALL_CAPITAL should fall back through init-cap to the lowercase stem")
	}
	if h.Check("pariS") {
		t.Errorf("pariS is CAMEL-classified and has no direct entry")
	}
}

func TestAllUpperMatchesTitleCasedStem(t *testing.T) {
	h := newHandler(t, nil, func(d *dictionary.Index) {
		d.Add("Paris", flagset.New())
	})
	if !h.Check("PARIS") {
		t.Errorf("ALL_CAPITAL should fall back to the title-cased stem when no lowercase entry exists")
	}
}

func TestInitCapMatchesVerbatimProperNoun(t *testing.T) {
	h := newHandler(t, nil, func(d *dictionary.Index) {
		d.Add("Paris", flagset.New())
	})
	if !h.Check("Paris") {
		t.Errorf("Paris should match its own stored casing verbatim")
	}
	if !h.Check("paris") {
		t.Errorf("paris is SMALL-classified; direct lookup misses, but the title-cased fallback should still see the stem")
	}
}

func TestForbiddenWordFlagRejects(t *testing.T) {
	aff := &config.AffData{ForbiddenWordFlag: "FORBID"}
	h := newHandler(t, aff, func(d *dictionary.Index) {
		d.Add("xyz", flagset.New("FORBID"))
	})
	if h.Check("xyz") {
		t.Errorf("a stem bearing the forbidden-word flag must be rejected even though the lookup succeeds")
	}
}

func TestWarnFlagRejectsOnlyWhenForbidWarnSet(t *testing.T) {
	aff := &config.AffData{WarnFlag: "W", ForbidWarn: true}
	h := newHandler(t, aff, func(d *dictionary.Index) {
		d.Add("shibboleth", flagset.New("W"))
	})
	if h.Check("shibboleth") {
		t.Errorf("warn-flagged stem must be rejected when forbid_warn is set")
	}

	aff2 := &config.AffData{WarnFlag: "W", ForbidWarn: false}
	h2 := newHandler(t, aff2, func(d *dictionary.Index) {
		d.Add("shibboleth", flagset.New("W"))
	})
	if !h2.Check("shibboleth") {
		t.Errorf("warn-flagged stem is accepted when forbid_warn is not set")
	}
}

func TestKeepCaseDiscardsFoldedHit(t *testing.T) {
	aff := &config.AffData{KeepCaseFlag: "KEEPCASE"}
	h := newHandler(t, aff, func(d *dictionary.Index) {
		d.Add("McDonald", flagset.New("KEEPCASE"))
	})
	if !h.Check("McDonald") {
		t.Errorf("verbatim match against the stem's own stored casing must not be discarded")
	}
	if h.Check("MCDONALD") {
		t.Errorf("an all-caps surface form must not match a KEEPCASE stem via folding")
	}
}

func TestGermanSharpSExpansion(t *testing.T) {
	aff := &config.AffData{CheckSharps: true, LocaleAff: "de_DE"}
	h := newHandler(t, aff, func(d *dictionary.Index) {
		d.Add("straße", flagset.New())
	})
	for _, word := range []string{"straße", "STRASSE", "Straße", "STRAßE"} {
		if !h.Check(word) {
			t.Errorf("Check(%q) = false, want true (checksharps enabled)", word)
		}
	}
}

func TestApostropheSplitAllUpper(t *testing.T) {
	h := newHandler(t, nil, func(d *dictionary.Index) {
		d.Add("O'Brien", flagset.New())
	})
	if !h.Check("O'BRIEN") {
		t.Errorf("ALL_CAPITAL apostrophe form should title-case both segments and match")
	}
}

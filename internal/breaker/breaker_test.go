package breaker

import (
	"strings"
	"testing"

	"github.com/npillmayer/morphspell/internal/affix"
	"github.com/npillmayer/morphspell/internal/casehandler"
	"github.com/npillmayer/morphspell/internal/config"
	"github.com/npillmayer/morphspell/internal/dictionary"
	"github.com/npillmayer/morphspell/internal/flagset"
	"github.com/npillmayer/morphspell/internal/stem"
	"github.com/npillmayer/morphspell/internal/unicodefold"
)

func newDecomposer(t *testing.T, table config.BreakTable, words ...string) *Decomposer {
	t.Helper()
	dict := dictionary.NewIndex()
	for _, w := range words {
		dict.Add(w, flagset.New())
	}
	aff := &config.AffData{}
	checker := &stem.Checker{Dict: dict, Affix: affix.NewIndex(), Aff: aff}
	h := &casehandler.Handler{Stem: checker, Fold: unicodefold.NewFolder(""), Aff: aff}
	return &Decomposer{Case: h, Table: table}
}

func TestCheckWholeWordDirectHitSkipsBreaking(t *testing.T) {
	d := newDecomposer(t, config.BreakTable{}, "cat")
	if !d.Check("cat") {
		t.Errorf("cat should be recognized without any break attempt")
	}
}

func TestCheckStartWordBreak(t *testing.T) {
	table := config.BreakTable{StartWordBreaks: []string{"un-"}}
	d := newDecomposer(t, table, "happy")
	if !d.Check("un-happy") {
		t.Errorf("un-happy should split on the start break un- and recognize happy")
	}
	if d.Check("un-sad") {
		t.Errorf("sad is not in the dictionary, the split must still fail overall")
	}
}

func TestCheckEndWordBreak(t *testing.T) {
	table := config.BreakTable{EndWordBreaks: []string{"-ish"}}
	d := newDecomposer(t, table, "green")
	if !d.Check("green-ish") {
		t.Errorf("green-ish should split on the end break -ish and recognize green")
	}
}

func TestCheckMiddleWordBreakRequiresBothHalves(t *testing.T) {
	table := config.BreakTable{MiddleWordBreaks: []string{"-"}}
	d := newDecomposer(t, table, "mother", "law")
	if !d.Check("mother-law") {
		t.Errorf("mother-law should split into two recognized halves")
	}
	if d.Check("mother-inlaw") {
		t.Errorf("inlaw is not in the dictionary, the whole decomposition must fail")
	}
}

func TestCheckMiddleWordBreakRejectsLeadingOrTrailingOccurrence(t *testing.T) {
	// findInteriorOccurrence requires both halves non-empty, so a pattern
	// only found at the very start or end of the string is not a valid
	// interior split point.
	table := config.BreakTable{MiddleWordBreaks: []string{"-"}}
	d := newDecomposer(t, table, "law")
	if d.Check("-law") {
		t.Errorf("a leading separator has no left half and must not be treated as an interior split")
	}
	if d.Check("law-") {
		t.Errorf("a trailing separator has no right half and must not be treated as an interior split")
	}
}

func TestCheckNoMatchingBreakStaysBad(t *testing.T) {
	d := newDecomposer(t, config.BreakTable{}, "cat")
	if d.Check("cat-dog") {
		t.Errorf("with no configured break patterns, an unrecognized compound must stay BAD")
	}
}

func TestCheckDepthCapRejectsPathologicalRecursion(t *testing.T) {
	// A single-character start break peels off one "a" per recursion
	// level, so a long run of "a"s drives the recursion past
	// maxRecursionDepth long before the remainder can resolve to the
	// stored stem "a", and check() must bail out at the cap rather than
	// keep recursing.
	table := config.BreakTable{StartWordBreaks: []string{"a"}}
	d := newDecomposer(t, table, "a")
	word := strings.Repeat("a", maxRecursionDepth+5)
	if d.Check(word) {
		t.Errorf("the stem a is only reachable past the depth cap, so the word must stay BAD")
	}
}

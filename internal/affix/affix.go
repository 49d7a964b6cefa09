// Package affix implements the affix-indexed containers used by the stem
// checker: prefix and suffix tables keyed on the surface substring each
// entry appends, plus the restricted character-class condition matcher
// those entries carry.
package affix

import (
	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/morphspell/internal/flagset"
)

func tracer() tracing.Trace {
	return tracing.Select("morphspell/affix")
}

// Kind distinguishes prefix rows from suffix rows.
type Kind uint8

const (
	Prefix Kind = iota
	Suffix
)

// Entry is one row of the affix table (spec.md §3).
type Entry struct {
	Kind      Kind
	Flag      flagset.Flag
	Strip     string
	Append    string
	Condition Condition

	// ContFlags is the set of continuation flags carried by this affix
	// entry. It gates need_affix/circumfix/compound_onlyin skips in the
	// single-affix checker, and would gate cross-product combination in
	// a two-affix checker (out of scope here, see spec.md §3).
	ContFlags flagset.FlagSet

	// CrossProduct records whether this entry may combine with one of
	// the opposite kind. Modeled but not consulted by the single-affix
	// checker (spec.md §3).
	CrossProduct bool
}

// bucket is the payload stored per Append key: every entry of one Kind
// sharing that Append substring.
type bucket struct {
	entries []Entry
}

// Index is the two append-keyed multimaps of spec.md §3, one per Kind.
// Each is backed by a derekparker/trie keyed on the exact Append string;
// iteration order within a bucket is insertion order, which the spec
// notes is unspecified but stable for a given load.
type Index struct {
	prefixes *trie.Trie
	suffixes *trie.Trie
}

// NewIndex builds an empty Index ready to be populated by a loader.
func NewIndex() *Index {
	return &Index{
		prefixes: trie.New(),
		suffixes: trie.New(),
	}
}

// Add registers one affix entry under its Kind's multimap, keyed on
// Append. Entries never alias one another (spec.md §3 invariant): each
// call copies e into its own bucket slot.
func (idx *Index) Add(e Entry) {
	t := idx.tableFor(e.Kind)
	node, ok := t.Find(e.Append)
	if ok && node != nil {
		if b, isBucket := node.Meta().(*bucket); isBucket {
			b.entries = append(b.entries, e)
			return
		}
	}
	t.Add(e.Append, &bucket{entries: []Entry{e}})
}

func (idx *Index) tableFor(k Kind) *trie.Trie {
	if k == Prefix {
		return idx.prefixes
	}
	return idx.suffixes
}

// Lookup returns every entry of the given kind whose Append field equals
// append, in the index's natural (insertion) order.
func (idx *Index) Lookup(kind Kind, append string) []Entry {
	t := idx.tableFor(kind)
	node, ok := t.Find(append)
	if !ok || node == nil {
		return nil
	}
	b, isBucket := node.Meta().(*bucket)
	if !isBucket {
		tracer().Errorf("affix index: node for %q holds unexpected payload type", append)
		return nil
	}
	return b.entries
}

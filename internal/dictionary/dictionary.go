// Package dictionary implements the case-exact stem index used by the
// checking pipeline. Keys are exactly the stems read from the dictionary
// file, in the dictionary's canonical case; case handling happens above
// this layer.
package dictionary

import "github.com/npillmayer/morphspell/internal/flagset"

// Index maps a surface stem string to its flag set. It is built once at
// dictionary load and shared read-only across all spell queries, mirroring
// the teacher's Dictionary.exceptions map: a plain map populated during
// loading and never mutated afterward.
type Index struct {
	stems map[string]flagset.FlagSet
}

// NewIndex builds an empty Index ready to be populated by a loader.
func NewIndex() *Index {
	return &Index{stems: make(map[string]flagset.FlagSet)}
}

// Add registers a stem with its flag set. Later calls for the same stem
// overwrite the earlier flag set, matching how a `.dic` file's last entry
// for a duplicated headword wins.
func (idx *Index) Add(stem string, flags flagset.FlagSet) {
	if idx.stems == nil {
		idx.stems = make(map[string]flagset.FlagSet)
	}
	idx.stems[stem] = flags
}

// Lookup returns the flag set registered for stem and whether it was found.
// The comparison is case-exact; callers are responsible for trying whatever
// case variants their strategy calls for.
func (idx *Index) Lookup(stem string) (flagset.FlagSet, bool) {
	if idx == nil {
		return flagset.FlagSet{}, false
	}
	fs, ok := idx.stems[stem]
	return fs, ok
}

// Len returns the number of distinct stems held by idx.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.stems)
}

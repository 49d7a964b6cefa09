// Package flagset implements the immutable, ordered flag sets attached to
// dictionary stems and affix entries.
package flagset

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Flag is an opaque marker attached to a stem or affix entry. The dictionary
// loader is free to use numeric flags ("62") or short character sequences
// ("Y", "A1") depending on the source format; the core only ever compares
// flags for equality, so both are represented as their canonical string
// form.
type Flag string

// FlagSet is an immutable, ordered set of flags with sub-linear membership
// testing. The zero value is the empty set.
type FlagSet struct {
	flags []Flag // sorted, deduplicated
}

// New builds a FlagSet from an unordered, possibly-duplicated flag slice.
// The input is not retained.
func New(flags ...Flag) FlagSet {
	if len(flags) == 0 {
		return FlagSet{}
	}
	cp := make([]Flag, len(flags))
	copy(cp, flags)
	slices.Sort(cp)
	cp = slices.Compact(cp)
	return FlagSet{flags: cp}
}

// Parse builds a FlagSet from a whitespace-delimited flag string, e.g.
// "A B Y3". Empty tokens are skipped.
func Parse(s string) FlagSet {
	fields := strings.Fields(s)
	flags := make([]Flag, 0, len(fields))
	for _, f := range fields {
		flags = append(flags, Flag(f))
	}
	return New(flags...)
}

// Contains reports whether f is a member of s in O(log n) time.
func (s FlagSet) Contains(f Flag) bool {
	if len(s.flags) == 0 {
		return false
	}
	_, ok := slices.BinarySearch(s.flags, f)
	return ok
}

// Len returns the number of distinct flags in s.
func (s FlagSet) Len() int { return len(s.flags) }

// Flags returns the flags of s in ascending order. The returned slice must
// not be mutated by the caller.
func (s FlagSet) Flags() []Flag { return s.flags }

// String renders the set for diagnostics.
func (s FlagSet) String() string {
	var b strings.Builder
	for i, f := range s.flags {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(f))
	}
	return b.String()
}

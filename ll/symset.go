package ll

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// SymbolSet is an ordered set of grammar symbols. Iteration is in
// lexicographic order, which keeps reports and tables deterministic.
// The nil SymbolSet is a valid empty set for all read operations.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set containing syms.
func NewSymbolSet(syms ...string) *SymbolSet {
	s := &SymbolSet{set: treeset.NewWithStringComparator()}
	for _, sym := range syms {
		s.set.Add(sym)
	}
	return s
}

// Add inserts sym and returns true if sym has not been a member before.
func (s *SymbolSet) Add(sym string) bool {
	if s.set.Contains(sym) {
		return false
	}
	s.set.Add(sym)
	return true
}

// Union adds every member of other to s, except for the symbols in except.
// It returns true if s has changed.
func (s *SymbolSet) Union(other *SymbolSet, except ...string) bool {
	changed := false
	other.Each(func(sym string) {
		for _, x := range except {
			if sym == x {
				return
			}
		}
		if s.Add(sym) {
			changed = true
		}
	})
	return changed
}

// Contains is a predicate: is sym a member of s?
func (s *SymbolSet) Contains(sym string) bool {
	if s == nil {
		return false
	}
	return s.set.Contains(sym)
}

// Size returns the number of members.
func (s *SymbolSet) Size() int {
	if s == nil {
		return 0
	}
	return s.set.Size()
}

// Empty is a predicate: does s have no members?
func (s *SymbolSet) Empty() bool {
	return s.Size() == 0
}

// Values returns the members of s in lexicographic order.
func (s *SymbolSet) Values() []string {
	if s == nil {
		return []string{}
	}
	vals := make([]string, 0, s.set.Size())
	for _, v := range s.set.Values() {
		vals = append(vals, v.(string))
	}
	return vals
}

// Each calls f for every member of s, in lexicographic order.
func (s *SymbolSet) Each(f func(sym string)) {
	if s == nil {
		return
	}
	it := s.set.Iterator()
	for it.Next() {
		f(it.Value().(string))
	}
}

// Copy returns a copy of s.
func (s *SymbolSet) Copy() *SymbolSet {
	return NewSymbolSet(s.Values()...)
}

// String renders s as "{ a, b, c }".
func (s *SymbolSet) String() string {
	if s.Empty() {
		return "{ }"
	}
	return "{ " + strings.Join(s.Values(), ", ") + " }"
}

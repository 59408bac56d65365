package ll

import "errors"

// ErrAllocationExhausted is returned when a normalization pass needs a fresh
// non-terminal, but every letter A–Z is already in use.
var ErrAllocationExhausted = errors.New("no available non-terminals (A-Z exhausted)")

// Allocator hands out fresh non-terminals. Fresh non-terminals are single upper
// case letters which do not occur anywhere in the grammar the allocator has been
// created for, and which have not been handed out before.
//
// One allocator is meant to be shared between all normalization passes of a
// single run. Allocators are not safe for concurrent use.
type Allocator struct {
	used   [26]bool
	issued []string
}

// NewAllocator creates an allocator for grammar g, reserving every single
// upper case letter occuring as a symbol in g. g may be nil.
func NewAllocator(g *Grammar) *Allocator {
	a := &Allocator{}
	if g != nil {
		for _, sym := range g.symbols() {
			a.Reserve(sym)
		}
	}
	return a
}

// Reserve marks sym as used, if it is a single upper case letter.
// Other symbols are ignored.
func (a *Allocator) Reserve(sym string) {
	if len(sym) == 1 && sym[0] >= 'A' && sym[0] <= 'Z' {
		a.used[sym[0]-'A'] = true
	}
}

// Fresh returns the alphabetically first letter not yet in use and marks it
// as used. If all 26 letters are taken, ErrAllocationExhausted is returned.
func (a *Allocator) Fresh() (string, error) {
	for i, u := range a.used {
		if !u {
			a.used[i] = true
			nt := string(rune('A' + i))
			a.issued = append(a.issued, nt)
			tracer().Debugf("allocated fresh non-terminal %s", nt)
			return nt, nil
		}
	}
	tracer().Errorf(ErrAllocationExhausted.Error())
	return "", ErrAllocationExhausted
}

// Issued returns the non-terminals handed out so far, in order of allocation.
func (a *Allocator) Issued() []string {
	return append([]string{}, a.issued...)
}

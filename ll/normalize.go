package ll

import "fmt"

// LeftFactor factors alternatives of a rule which start with the rule's own
// left hand side. For a non-terminal N with at least two alternatives of the form
// N β₁, N β₂, …, a fresh non-terminal N′ is allocated and the rule becomes
//
//     N  ->  N N′ | γ₁ | γ₂ …      (γᵢ being the remaining alternatives)
//     N′ ->  β₁ | β₂ | …
//
// Alternatives sharing any other common prefix are not touched. The βᵢ are
// copied verbatim; an empty βᵢ results in an empty alternative for N′.
//
// g is not modified; LeftFactor returns a new grammar. If alloc is nil, an
// allocator for g is created.
func LeftFactor(g *Grammar, alloc *Allocator) (*Grammar, error) {
	if alloc == nil {
		alloc = NewAllocator(g)
	}
	ng := NewGrammar(g.Name, g.epsilon)
	ng.SetStart(g.Start())
	var err error
	g.EachNonTerminal(func(nt string, alts []Alternative) {
		if err != nil {
			return
		}
		var suffixes, rest []Alternative
		for _, a := range alts {
			if a.First() == nt {
				suffixes = append(suffixes, a[1:].Clone())
			} else {
				rest = append(rest, a)
			}
		}
		if len(suffixes) < 2 {
			ng.AddProduction(nt, alts...)
			return
		}
		var n string
		if n, err = alloc.Fresh(); err != nil {
			err = fmt.Errorf("left factoring %s: %w", nt, err)
			return
		}
		tracer().Infof("left factoring %s: %d alternatives moved to %s", nt, len(suffixes), n)
		ng.AddProduction(nt, Alternative{nt, n})
		ng.AddProduction(nt, rest...)
		ng.AddProduction(n, suffixes...)
	})
	if err != nil {
		return nil, err
	}
	return ng, nil
}

// RemoveLeftRecursion removes immediate left recursion. For a non-terminal N
// with alternatives N α₁ | … | N αₘ | β₁ | … | βₖ, a fresh non-terminal N′
// is allocated and the rule becomes
//
//     N  ->  β₁ N′ | … | βₖ N′
//     N′ ->  α₁ N′ | … | αₘ N′ | ε
//
// An empty αᵢ or βᵢ is replaced by ε, giving ε N′. Indirect left recursion is
// not detected.
//
// g is not modified; RemoveLeftRecursion returns a new grammar. If alloc is nil,
// an allocator for g is created.
func RemoveLeftRecursion(g *Grammar, alloc *Allocator) (*Grammar, error) {
	if alloc == nil {
		alloc = NewAllocator(g)
	}
	eps := g.epsilon
	ng := NewGrammar(g.Name, eps)
	ng.SetStart(g.Start())
	var err error
	g.EachNonTerminal(func(nt string, alts []Alternative) {
		if err != nil {
			return
		}
		var alphas, betas []Alternative
		for _, a := range alts {
			if a.First() == nt {
				alphas = append(alphas, a[1:].Clone())
			} else {
				betas = append(betas, a.Clone())
			}
		}
		if len(alphas) == 0 {
			ng.AddProduction(nt, alts...)
			return
		}
		var n string
		if n, err = alloc.Fresh(); err != nil {
			err = fmt.Errorf("removing left recursion from %s: %w", nt, err)
			return
		}
		tracer().Infof("removing left recursion from %s, introducing %s", nt, n)
		tail := func(a Alternative) Alternative {
			if len(a) == 0 {
				a = Alternative{eps}
			}
			return append(a, n)
		}
		ng.AddProduction(nt) // keeps nt a non-terminal even without betas
		for _, b := range betas {
			ng.AddProduction(nt, tail(b))
		}
		for _, a := range alphas {
			ng.AddProduction(n, tail(a))
		}
		ng.AddProduction(n, Alternative{eps})
	})
	if err != nil {
		return nil, err
	}
	return ng, nil
}

// Normalize prepares a grammar for predictive parsing: it applies LeftFactor,
// then RemoveLeftRecursion, sharing one allocator between both passes.
// It returns the resulting grammar and the allocator, which reports the fresh
// non-terminals introduced.
func Normalize(g *Grammar) (*Grammar, *Allocator, error) {
	alloc := NewAllocator(g)
	g1, err := LeftFactor(g, alloc)
	if err != nil {
		return nil, alloc, err
	}
	g2, err := RemoveLeftRecursion(g1, alloc)
	if err != nil {
		return nil, alloc, err
	}
	tracer().Infof("normalized grammar %s, %d fresh non-terminals", g.Name, len(alloc.Issued()))
	return g2, alloc, nil
}

package ll

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRemoveLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	g := makeLeftRecursiveGrammar(t)
	ng, alloc, err := Normalize(g)
	if err != nil {
		t.Fatal(err)
	}
	ng.Dump()
	expected := "A -> + T A | #\n" +
		"B -> * F B | #\n" +
		"E -> T A\n" +
		"F -> ( E ) | id\n" +
		"T -> F B\n"
	if got := ng.String(); got != expected {
		t.Errorf("unexpected normalized grammar:\n%s", got)
	}
	if diff := cmp.Diff([]string{"A", "B"}, alloc.Issued()); diff != "" {
		t.Errorf("fresh non-terminals differ: %s", diff)
	}
	if ng.Start() != "E" {
		t.Errorf("expected start symbol to survive normalization, is %q", ng.Start())
	}
	if g.String() == ng.String() {
		t.Errorf("input grammar has been modified")
	}
}

func TestNoLeftRecursionAfterNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Mixed")
	b.LHS("S").S("S", "a").End()
	b.LHS("S").S("S", "b").End()
	b.LHS("S").S("S").End()
	b.LHS("S").S("c").End()
	b.LHS("L").S("L").End()
	b.LHS("L").S("x").End()
	g, _ := b.Grammar()
	ng, _, err := Normalize(g)
	if err != nil {
		t.Fatal(err)
	}
	ng.EachNonTerminal(func(nt string, alts []Alternative) {
		for _, a := range alts {
			if a.First() == nt {
				t.Errorf("alternative %v of %s is left recursive", []string(a), nt)
			}
		}
	})
	for _, nt := range ng.NonTerminals() {
		if len(nt) == 1 && nt != "S" && nt != "L" {
			if _, ok := g.index[nt]; ok {
				t.Errorf("fresh non-terminal %s has been present before", nt)
			}
		}
	}
}

func TestLeftFactor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	g := NewGrammar("G", "")
	g.AddProduction("S", Alternative{"S", "a"}, Alternative{"c"}, Alternative{"S", "b"})
	alloc := NewAllocator(g)
	lf, err := LeftFactor(g, alloc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Alternative{{"S", "A"}, {"c"}}, lf.Alternatives("S")); diff != "" {
		t.Errorf("factored rule for S differs: %s", diff)
	}
	if diff := cmp.Diff([]Alternative{{"a"}, {"b"}}, lf.Alternatives("A")); diff != "" {
		t.Errorf("rule for fresh non-terminal differs: %s", diff)
	}
	rr, err := RemoveLeftRecursion(lf, alloc)
	if err != nil {
		t.Fatal(err)
	}
	if got := rr.String(); got != "A -> a | b\nB -> A B | #\nS -> c B\n" {
		t.Errorf("unexpected grammar after left recursion removal:\n%s", got)
	}
}

func TestLeftFactorEmptySuffix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	g := NewGrammar("G", "")
	g.AddProduction("S", Alternative{"S"}, Alternative{"S", "a"}, Alternative{"b"})
	lf, err := LeftFactor(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Alternative{{}, {"a"}}, lf.Alternatives("A")); diff != "" {
		t.Errorf("suffixes differ: %s", diff)
	}
	if got := lf.String(); got != "A -> # | a\nS -> S A | b\n" {
		t.Errorf("unexpected factored grammar:\n%s", got)
	}
}

func TestLeftFactorIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	g := NewGrammar("G", "")
	g.AddProduction("S", Alternative{"S", "a"}, Alternative{"S", "b"}, Alternative{"c"})
	g.AddProduction("X", Alternative{"X", "y"}, Alternative{"X"}, Alternative{"z"})
	alloc := NewAllocator(g)
	once, err := LeftFactor(g, alloc)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := LeftFactor(once, alloc)
	if err != nil {
		t.Fatal(err)
	}
	if once.Fingerprint() != twice.Fingerprint() {
		t.Errorf("left factoring is not idempotent:\n%s\nvs.\n%s", once, twice)
	}
	if len(alloc.Issued()) != 2 {
		t.Errorf("expected 2 fresh non-terminals, have %v", alloc.Issued())
	}
}

func TestLeftFactorIgnoresCommonPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	// Only prefixes equal to the rule's LHS are factored.
	g := NewGrammar("G", "")
	g.AddProduction("X", Alternative{"a", "b"}, Alternative{"a", "c"})
	alloc := NewAllocator(g)
	lf, err := LeftFactor(g, alloc)
	if err != nil {
		t.Fatal(err)
	}
	if lf.Fingerprint() != g.Fingerprint() {
		t.Errorf("expected common prefix 'a' to be left untouched, have\n%s", lf)
	}
	if len(alloc.Issued()) != 0 {
		t.Errorf("expected no allocations, have %v", alloc.Issued())
	}
}

func TestNormalizeExhaustion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	g := NewGrammar("Alphabet", "")
	g.AddProduction("S", Alternative{"S", "x"})
	for c := 'A'; c <= 'Z'; c++ {
		g.AddProduction("S", Alternative{string(c)})
	}
	_, _, err := Normalize(g)
	if !errors.Is(err, ErrAllocationExhausted) {
		t.Errorf("expected exhaustion error, got %v", err)
	}
}

package predict

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/gollo"
	"github.com/npillmayer/gollo/ll"
	"github.com/npillmayer/gollo/ll/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// The left recursive expression grammar; normalization introduces
//
//     E  ->  T A
//     A  ->  + T A | #
//     T  ->  F B
//     B  ->  * F B | #
//     F  ->  ( E ) | id
//
func makeExprTable(t *testing.T) *ll.Table {
	b := ll.NewGrammarBuilder("Expr")
	b.LHS("E").S("E", "+", "T").End()
	b.LHS("E").S("T").End()
	b.LHS("T").S("T", "*", "F").End()
	b.LHS("T").S("F").End()
	b.LHS("F").S("(", "E", ")").End()
	b.LHS("F").S("id").End()
	return makeTable(t, b)
}

func makeTable(t *testing.T, b *ll.GrammarBuilder) *ll.Table {
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g, _, err = ll.Normalize(g)
	if err != nil {
		t.Fatal(err)
	}
	return ll.NewTableGenerator(ll.Analysis(g)).CreateTable()
}

func parse(t *testing.T, T *ll.Table, input string, opts ...Option) (*Result, error) {
	scan, err := scanner.ProgramTokenizer(input)
	if err != nil {
		t.Fatal(err)
	}
	return NewParser(T, opts...).Parse(scan)
}

// --- the Tests -------------------------------------------------------------

func TestAcceptWithoutErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	T := makeExprTable(t)
	for _, input := range []string{"id", "id + id * id", "( id + id ) * id", "id\t*\n( id )"} {
		result, err := parse(t, T, input)
		if err != nil {
			t.Errorf("parsing %q: %v", input, err)
			continue
		}
		if !result.Accepted || len(result.Errors) != 0 {
			t.Errorf("expected %q to be accepted without errors, have %v", input, result.Errors)
		}
	}
}

func TestRecoverFromMissingProduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	result, err := parse(t, makeExprTable(t), "id + + id $")
	if err != nil {
		t.Fatal(err)
	}
	if !result.Accepted {
		t.Errorf("expected input to be accepted")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, have %d", len(result.Errors))
	}
	e := result.Errors[0]
	if e.Kind != NoProduction || e.Top != "T" || e.Lookahead != "+" {
		t.Errorf("unexpected error %v", e)
	}
	if e.Error() != "unexpected token + after +: no production for T" {
		t.Errorf("unexpected error message %q", e.Error())
	}
	if e.Span != (gollo.Span{5, 6}) {
		t.Errorf("expected error at (5…6), is %v", e.Span)
	}
}

func TestRecoverFromMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	result, err := parse(t, makeExprTable(t), "( id")
	if err != nil {
		t.Fatal(err)
	}
	if !result.Accepted || len(result.Errors) != 1 {
		t.Fatalf("expected acceptance with 1 error, have %v", result.Errors)
	}
	if result.Errors[0].Error() != "syntax error: expected ) before $" {
		t.Errorf("unexpected error message %q", result.Errors[0].Error())
	}
}

// tokenList is a tokenizer over a fixed list of words, without end marker.
type tokenList struct {
	words []string
	pos   int
}

func (tl *tokenList) NextToken() gollo.Token {
	if tl.pos >= len(tl.words) {
		return scanner.MakeDefaultToken(scanner.EOF, "", gollo.Span{})
	}
	w := tl.words[tl.pos]
	tl.pos++
	return scanner.MakeDefaultToken(scanner.Word, w, gollo.Span{})
}

func (tl *tokenList) SetErrorHandler(func(error)) {}

func TestUnexpectedEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	p := NewParser(makeExprTable(t))
	result, err := p.Parse(&tokenList{words: []string{"id", "+", "id"}})
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("expected unexpected end of input, got %v", err)
	}
	if result == nil || result.Accepted {
		t.Errorf("expected partial result without acceptance")
	}
}

func TestStackExhausted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	result, err := parse(t, makeExprTable(t), "id id")
	if !errors.Is(err, ErrStackExhausted) {
		t.Errorf("expected stack exhaustion, got %v", err)
	}
	if result.Accepted || len(result.Errors) != 3 {
		t.Errorf("expected 3 errors without acceptance, have %v", result.Errors)
	}
	if result.Errors[2].Kind != Mismatch || result.Errors[2].Top != "$" {
		t.Errorf("expected last error to be a mismatch for $, is %v", result.Errors[2])
	}
}

func TestParserStuck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	// Indirect left recursion is not removed by normalization.
	b := ll.NewGrammarBuilder("Indirect")
	b.LHS("S").S("A", "x").End()
	b.LHS("A").S("z").End()
	b.LHS("A").S("S", "y").End()
	T := makeTable(t, b)
	result, err := parse(t, T, "z x", MaxSteps(50), WithoutTrace())
	if !errors.Is(err, ErrParserStuck) {
		t.Errorf("expected parser to be stuck, got %v", err)
	}
	if result.Accepted || len(result.Trace) != 0 {
		t.Errorf("expected no acceptance and no trace")
	}
}

func TestTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	b := ll.NewGrammarBuilder("Single")
	b.LHS("S").S("a").End()
	result, err := parse(t, makeTable(t, b), "a")
	if err != nil {
		t.Fatal(err)
	}
	expected := []Step{
		{Action: Start, Stack: []string{"S", "$"}, Lookahead: "a", Remaining: []string{"a", "$"}},
		{Action: Predict, Rule: "S -> a", Stack: []string{"a", "$"}, Lookahead: "a", Remaining: []string{"a", "$"}},
		{Action: Match, Stack: []string{"$"}, Lookahead: "$", Remaining: []string{"$"}},
		{Action: Accept, Lookahead: "$", Remaining: []string{"$"}},
	}
	if diff := cmp.Diff(expected, result.Trace); diff != "" {
		t.Errorf("trace differs: %s", diff)
	}
	for _, step := range result.Trace {
		t.Logf("%v", step)
	}
}

func TestNotInitialized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	if _, err := NewParser(nil).Parse(&tokenList{}); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected uninitialized parser to fail, got %v", err)
	}
}

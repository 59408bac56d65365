package ll

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exprTable = `E ( -> T E' 
E id -> T E' 
E' $ -> # 
E' ) -> # 
E' + -> + T E' 
F ( -> ( E ) 
F id -> id 
T ( -> F T' 
T id -> F T' 
T' $ -> # 
T' ) -> # 
T' * -> * F T' 
T' + -> # 
`

func makeTable(t *testing.T, g *Grammar) *Table {
	gen := NewTableGenerator(Analysis(g))
	gen.CreateTable()
	T := gen.Table()
	if T == nil {
		t.Fatalf("no table created for %s", g.Name)
	}
	return T
}

func TestExprTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	T := makeTable(t, makeExprGrammar(t))
	T.Dump()
	if T.Size() != 13 {
		t.Errorf("expected table to have 13 entries, has %d", T.Size())
	}
	if diff := cmp.Diff([]string{"$", "(", ")", "*", "+", "id"}, T.Lookaheads()); diff != "" {
		t.Errorf("lookaheads differ: %s", diff)
	}
	a, ok := T.Lookup("E'", ")")
	if !ok {
		t.Fatalf("expected entry for (E', ))")
	}
	if diff := cmp.Diff(Alternative{"#"}, a); diff != "" {
		t.Errorf("entry for (E', )) differs: %s", diff)
	}
	if _, ok := T.Lookup("T", "+"); ok {
		t.Errorf("expected no entry for (T, +)")
	}
	if _, ok := T.Lookup("X", "id"); ok {
		t.Errorf("expected no entry for unknown non-terminal")
	}
	if diff := cmp.Diff(exprTable, T.String()); diff != "" {
		t.Errorf("table file content differs: %s", diff)
	}
}

func TestLastWriteWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	// S -> a x | a y
	// A -> c | #        with FOLLOW(A) = { c }
	g := NewGrammar("Conflicts", "")
	g.AddProduction("S", Alternative{"a", "x"}, Alternative{"a", "y"}, Alternative{"A", "c"})
	g.AddProduction("A", Alternative{"c"}, Alternative{"#"})
	T := makeTable(t, g)
	a, _ := T.Lookup("S", "a")
	if diff := cmp.Diff(Alternative{"a", "y"}, a); diff != "" {
		t.Errorf("expected later alternative to win for (S, a): %s", diff)
	}
	a, _ = T.Lookup("A", "c")
	if diff := cmp.Diff(Alternative{"#"}, a); diff != "" {
		t.Errorf("expected epsilon alternative to win for (A, c): %s", diff)
	}
}

func TestWriteTableFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	T := makeTable(t, makeExprGrammar(t))
	path := filepath.Join(t.TempDir(), "LL1Table.txt")
	if err := WriteTableFile(path, T); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if len(lines) != T.Size() {
		t.Errorf("expected %d lines, have %d", T.Size(), len(lines))
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, " ") || !strings.Contains(line, " -> ") {
			t.Errorf("malformed table line %q", line)
		}
	}
}

func TestEndToEndNormalizedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gollo.ll")
	defer teardown()
	//
	g, alloc, err := Normalize(makeExprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(alloc.Issued()) != 0 {
		t.Errorf("expected no fresh non-terminals for expression grammar, have %v", alloc.Issued())
	}
	if cmp.Diff(exprTable, makeTable(t, g).String()) != "" {
		t.Errorf("normalization changed a grammar already suitable for predictive parsing")
	}
}

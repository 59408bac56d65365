package ll

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/npillmayer/gollo/ll/sparse"
)

// === Predictive Parser Table ===============================================

// Table is a predictive parser table. It maps pairs (non-terminal, lookahead)
// to an alternative of the non-terminal. Lookaheads are terminals of the grammar
// or the end marker "$".
//
// Entries are stored in a sparse matrix, where rows correspond to non-terminals,
// columns to lookaheads (both in lexicographic order), and values are ordinals
// of alternatives within their rule.
type Table struct {
	g      *Grammar
	rows   []string
	rowidx map[string]int
	cols   []string
	colidx map[string]int
	matrix *sparse.IntMatrix
}

func newTable(g *Grammar) *Table {
	T := &Table{
		g:      g,
		rows:   g.NonTerminals(),
		rowidx: make(map[string]int),
		colidx: make(map[string]int),
	}
	T.cols = g.Terminals()
	if !g.IsTerminal(EndMarker) {
		T.cols = append(T.cols, EndMarker)
	}
	sort.Strings(T.cols)
	for i, nt := range T.rows {
		T.rowidx[nt] = i
	}
	for j, la := range T.cols {
		T.colidx[la] = j
	}
	T.matrix = sparse.NewIntMatrix(len(T.rows), len(T.cols), sparse.DefaultNullValue)
	return T
}

// set enters alternative no. n of nt for lookahead la and returns true if
// a previous entry has been replaced.
func (T *Table) set(nt, la string, n int) bool {
	i, ok := T.rowidx[nt]
	j, ok2 := T.colidx[la]
	if !ok || !ok2 {
		tracer().Errorf("no table position for (%s, %s)", nt, la)
		return false
	}
	old := T.matrix.Set(i, j, int32(n))
	return old != T.matrix.NullValue() && old != int32(n)
}

// Grammar returns the grammar the table has been built for.
func (T *Table) Grammar() *Grammar {
	return T.g
}

// Lookup returns the alternative to predict for non-terminal nt, given
// lookahead la. If the table has no entry for (nt, la), false is returned.
func (T *Table) Lookup(nt, la string) (Alternative, bool) {
	i, ok := T.rowidx[nt]
	if !ok {
		return nil, false
	}
	j, ok := T.colidx[la]
	if !ok {
		return nil, false
	}
	n := T.matrix.Value(i, j)
	if n == T.matrix.NullValue() {
		return nil, false
	}
	return T.g.Alternative(nt, int(n))
}

// Each calls f for every entry of the table, ordered by non-terminal, then
// by lookahead.
func (T *Table) Each(f func(nt, la string, a Alternative)) {
	T.matrix.Each(func(i, j int, n int32) {
		nt := T.rows[i]
		a, _ := T.g.Alternative(nt, int(n))
		f(nt, T.cols[j], a)
	})
}

// Size returns the number of entries in the table.
func (T *Table) Size() int {
	return T.matrix.ValueCount()
}

// NonTerminals returns the row labels of the table.
func (T *Table) NonTerminals() []string {
	return append([]string{}, T.rows...)
}

// Lookaheads returns the column labels of the table, i.e. the terminals of the
// grammar plus the end marker.
func (T *Table) Lookaheads() []string {
	return append([]string{}, T.cols...)
}

// WriteTo writes the table entries to w, one line per entry:
//
//     E' $ -> # 
//     E' ) -> # 
//     F ( -> ( E ) 
//
// Every symbol of an alternative is followed by a single space.
// WriteTo implements io.WriterTo.
func (T *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var cnt int64
	var err error
	T.Each(func(nt, la string, a Alternative) {
		if err != nil {
			return
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s -> ", nt, la)
		for _, sym := range a {
			b.WriteString(sym)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
		var n int
		n, err = bw.WriteString(b.String())
		cnt += int64(n)
	})
	if err != nil {
		return cnt, err
	}
	return cnt, bw.Flush()
}

// String renders the table in the file format of WriteTo.
func (T *Table) String() string {
	var b strings.Builder
	T.WriteTo(&b)
	return b.String()
}

// Dump is a debugging helper: dump the table entries to the tracer.
func (T *Table) Dump() {
	tracer().Debugf("--- table for %s, %d entries ---", T.g.Name, T.Size())
	T.Each(func(nt, la string, a Alternative) {
		tracer().Debugf("  M[%s, %s] = %s -> %v", nt, la, nt, []string(a))
	})
}

// WriteTableFile writes table T to a file at path, creating or truncating it.
func WriteTableFile(path string, T *Table) error {
	f, err := os.Create(path)
	if err != nil {
		tracer().Errorf("cannot create table file: %v", err)
		return fmt.Errorf("writing table: %w", err)
	}
	if _, err = T.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing table to %s: %w", path, err)
	}
	return f.Close()
}

// === Table Generator =======================================================

// TableGenerator is a generator object to construct predictive parser tables.
// Clients usually create a Grammar G, normalize it, then create an LLAnalysis
// object for it and then a table generator. TableGenerator.CreateTable()
// constructs the table for a predictive parser recognizing G.
type TableGenerator struct {
	g     *Grammar
	ga    *LLAnalysis
	table *Table
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LLAnalysis) *TableGenerator {
	return &TableGenerator{g: ga.Grammar(), ga: ga}
}

// Table returns the predictive parser table. The table has to be built by
// calling CreateTable() previously.
func (gen *TableGenerator) Table() *Table {
	if gen.table == nil {
		tracer().Errorf("table not yet initialized")
	}
	return gen.table
}

// CreateTable builds the predictive parser table. For every non-terminal N
// (in lexicographic order) and every alternative A of N (in rule order), the
// pair (N, t) is set to A for every t in the directive set of A: the terminals
// which may start A, plus FOLLOW(N) if A may vanish.
//
// If two alternatives of N claim the same lookahead, the one processed later
// replaces the earlier entry. Conflicts are not reported as errors.
func (gen *TableGenerator) CreateTable() *Table {
	tracer().Debugf("=== build predictive table ======================================")
	T := newTable(gen.g)
	gen.g.EachNonTerminal(func(nt string, alts []Alternative) {
		for n, a := range alts {
			firstSet, vanishes := gen.ga.FirstOfSequence(a)
			enter := func(la string) {
				if T.set(nt, la, n) {
					tracer().Debugf("M[%s, %s] overwritten by %s -> %v", nt, la, nt, []string(a))
				}
			}
			firstSet.Each(enter)
			if vanishes {
				gen.ga.follow[nt].Each(enter)
			}
		}
	})
	tracer().Infof("predictive table for %s has %d entries", gen.g.Name, T.Size())
	gen.table = T
	return T
}

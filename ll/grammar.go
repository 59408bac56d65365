package ll

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
)

// DefaultEpsilon is the symbol used to denote the empty word, if a grammar
// does not set a different one.
const DefaultEpsilon = "#"

// EndMarker is the pseudo-terminal marking the end of input. It is a member
// of FOLLOW(start) and a valid lookahead column of a predictive table.
const EndMarker = "$"

// --- Symbol classes --------------------------------------------------------

// SymbolClass is the classification of a symbol relative to a grammar.
type SymbolClass int8

// Symbols are either non-terminals, terminals, or the epsilon sentinel.
const (
	Terminal SymbolClass = iota
	NonTerminal
	EpsilonSymbol
)

func (sc SymbolClass) String() string {
	switch sc {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	case EpsilonSymbol:
		return "epsilon"
	}
	return fmt.Sprintf("SymbolClass(%d)", sc)
}

// --- Alternatives ----------------------------------------------------------

// Alternative is the right hand side of a grammar rule: an ordered sequence
// of symbols. An empty alternative derives the empty word.
type Alternative []string

// IsEmpty returns true if the alternative derives the empty word directly,
// i.e. if it has no symbols or is the single symbol eps.
func (a Alternative) IsEmpty(eps string) bool {
	return len(a) == 0 || (len(a) == 1 && a[0] == eps)
}

// First returns the leading symbol of a, or "" for an empty alternative.
func (a Alternative) First() string {
	if len(a) == 0 {
		return ""
	}
	return a[0]
}

// Clone returns a copy of a which does not share storage with a.
func (a Alternative) Clone() Alternative {
	if a == nil {
		return Alternative{}
	}
	c := make(Alternative, len(a))
	copy(c, a)
	return c
}

func (a Alternative) String() string {
	return strings.Join(a, " ")
}

// --- Grammar ---------------------------------------------------------------

// production is a record in the production arena of a grammar. All alternatives
// of a non-terminal are held in one production record.
type production struct {
	serial int
	lhs    string
	alts   []Alternative
}

// Grammar is a context-free grammar. Productions are held in an arena, indexed
// by serial number in order of first appearance of their left hand side.
// Non-terminals are exactly the left hand sides of productions. Every other
// symbol used on a right hand side, except the epsilon sentinel, is a terminal.
//
// Grammars are treated as immutable once handed to a normalization pass or to
// the analysis; passes return new grammars.
type Grammar struct {
	Name      string
	epsilon   string
	start     string
	prods     []*production  // arena
	index     map[string]int // LHS -> serial
	terminals *SymbolSet
}

// NewGrammar creates an empty grammar. If epsilon is empty, DefaultEpsilon
// is used as the epsilon sentinel.
func NewGrammar(name string, epsilon string) *Grammar {
	if epsilon == "" {
		epsilon = DefaultEpsilon
	}
	return &Grammar{
		Name:      name,
		epsilon:   epsilon,
		index:     make(map[string]int),
		terminals: NewSymbolSet(),
	}
}

// Epsilon returns the epsilon sentinel of g.
func (g *Grammar) Epsilon() string {
	return g.epsilon
}

// Start returns the start symbol of g. If no start symbol has been set, the
// lexicographically first non-terminal is returned. For an empty grammar,
// Start returns "".
func (g *Grammar) Start() string {
	if g.start != "" {
		return g.start
	}
	if nts := g.NonTerminals(); len(nts) > 0 {
		return nts[0]
	}
	return ""
}

// SetStart sets the start symbol of g.
func (g *Grammar) SetStart(nt string) {
	g.start = nt
}

// AddProduction appends alternatives to the rule for lhs. If lhs is not yet
// a non-terminal of g, a new production record is created. The first
// left hand side added becomes the start symbol, unless a start symbol has
// been set before. Calling AddProduction without alternatives just registers
// lhs as a non-terminal.
func (g *Grammar) AddProduction(lhs string, alts ...Alternative) {
	if lhs == "" || lhs == g.epsilon {
		tracer().Errorf("illegal left hand side %q, ignoring rule", lhs)
		return
	}
	serial, ok := g.index[lhs]
	if !ok {
		serial = len(g.prods)
		g.prods = append(g.prods, &production{serial: serial, lhs: lhs})
		g.index[lhs] = serial
	}
	p := g.prods[serial]
	for _, a := range alts {
		p.alts = append(p.alts, a.Clone())
	}
	if g.start == "" {
		g.start = lhs
	}
	g.RecomputeTerminals()
}

// RecomputeTerminals derives the terminal set from the productions: every
// right hand side symbol which is neither a non-terminal nor epsilon.
// It has to be called after every structural change of the productions.
func (g *Grammar) RecomputeTerminals() {
	g.terminals = NewSymbolSet()
	for _, p := range g.prods {
		for _, a := range p.alts {
			for _, sym := range a {
				if g.Classify(sym) == Terminal {
					g.terminals.Add(sym)
				}
			}
		}
	}
}

// Classify returns the class of sym with respect to g. Classify is total:
// every string which is neither a non-terminal of g nor the epsilon sentinel
// is classified as a terminal.
func (g *Grammar) Classify(sym string) SymbolClass {
	if sym == g.epsilon {
		return EpsilonSymbol
	}
	if _, ok := g.index[sym]; ok {
		return NonTerminal
	}
	return Terminal
}

// IsNonTerminal is a predicate: is sym a left hand side of g?
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.Classify(sym) == NonTerminal
}

// IsTerminal is a predicate: is sym a terminal of g?
// Note that the end marker "$" is not a terminal of any grammar.
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals.Contains(sym)
}

// Alternatives returns a copy of the alternatives of non-terminal nt, in
// the order they have been added.
func (g *Grammar) Alternatives(nt string) []Alternative {
	serial, ok := g.index[nt]
	if !ok {
		return nil
	}
	alts := make([]Alternative, len(g.prods[serial].alts))
	for i, a := range g.prods[serial].alts {
		alts[i] = a.Clone()
	}
	return alts
}

// Alternative returns alternative no. n of non-terminal nt.
func (g *Grammar) Alternative(nt string, n int) (Alternative, bool) {
	serial, ok := g.index[nt]
	if !ok || n < 0 || n >= len(g.prods[serial].alts) {
		return nil, false
	}
	return g.prods[serial].alts[n].Clone(), true
}

// NonTerminals returns the non-terminals of g in lexicographic order.
func (g *Grammar) NonTerminals() []string {
	nts := make([]string, 0, len(g.prods))
	for _, p := range g.prods {
		nts = append(nts, p.lhs)
	}
	sort.Strings(nts)
	return nts
}

// Terminals returns the terminals of g in lexicographic order.
func (g *Grammar) Terminals() []string {
	return g.terminals.Values()
}

// EachNonTerminal iterates over the non-terminals of g in lexicographic order,
// calling f with the non-terminal and its alternatives. This is the order in
// which every transformation and analysis step visits a grammar.
// f must not modify the alternatives.
func (g *Grammar) EachNonTerminal(f func(nt string, alts []Alternative)) {
	for _, nt := range g.NonTerminals() {
		f(nt, g.prods[g.index[nt]].alts)
	}
}

// Size returns the number of non-terminals of g.
func (g *Grammar) Size() int {
	return len(g.prods)
}

// AlternativeCount returns the number of alternatives over all rules of g.
func (g *Grammar) AlternativeCount() int {
	cnt := 0
	for _, p := range g.prods {
		cnt += len(p.alts)
	}
	return cnt
}

// symbols returns every symbol occuring in g, be it on the left or on the
// right hand side of a rule.
func (g *Grammar) symbols() []string {
	seen := make(map[string]bool)
	var syms []string
	add := func(sym string) {
		if !seen[sym] {
			seen[sym] = true
			syms = append(syms, sym)
		}
	}
	for _, p := range g.prods {
		add(p.lhs)
		for _, a := range p.alts {
			for _, sym := range a {
				add(sym)
			}
		}
	}
	return syms
}

// Copy returns a deep copy of g.
func (g *Grammar) Copy() *Grammar {
	c := NewGrammar(g.Name, g.epsilon)
	c.start = g.start
	for _, p := range g.prods {
		c.AddProduction(p.lhs, p.alts...)
	}
	c.start = g.start
	return c
}

// String renders g with one line per non-terminal, in lexicographic order:
//
//     E' -> + T E' | #
//
// Empty alternatives are printed as the epsilon symbol.
func (g *Grammar) String() string {
	var b strings.Builder
	g.EachNonTerminal(func(nt string, alts []Alternative) {
		b.WriteString(nt)
		b.WriteString(" -> ")
		for i, a := range alts {
			if i > 0 {
				b.WriteString(" | ")
			}
			if len(a) == 0 {
				b.WriteString(g.epsilon)
			} else {
				b.WriteString(a.String())
			}
		}
		b.WriteByte('\n')
	})
	return b.String()
}

// Dump is a debugging helper: dump the productions of a grammar to the tracer,
// in order of their serial numbers.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol is %s, epsilon is %s", g.Start(), g.epsilon)
	for _, p := range g.prods {
		for _, a := range p.alts {
			tracer().Debugf("%3d: [%s] ::= %v", p.serial, p.lhs, []string(a))
		}
	}
	tracer().Debugf("terminals: %v", g.terminals)
	tracer().Debugf("-------------------------------------------------------")
}

// fingerprint is the hashable structure of a grammar.
type fingerprint struct {
	Start       string
	Epsilon     string
	Productions []fingerprintRule
}

type fingerprintRule struct {
	LHS  string
	Alts [][]string
}

// Fingerprint returns a structural hash of g. Grammars with the same start
// symbol and the same (sorted) rules have the same fingerprint, regardless of
// the order in which rules have been added.
func (g *Grammar) Fingerprint() string {
	fp := fingerprint{Start: g.Start(), Epsilon: g.epsilon}
	g.EachNonTerminal(func(nt string, alts []Alternative) {
		r := fingerprintRule{LHS: nt, Alts: make([][]string, len(alts))}
		for i, a := range alts {
			r.Alts[i] = append([]string{}, a...)
		}
		fp.Productions = append(fp.Productions, r)
	})
	h, err := structhash.Hash(fp, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar %s: %v", g.Name, err)
		return ""
	}
	return h
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a helper for constructing grammars in code.
//
//    b := ll.NewGrammarBuilder("G")
//    b.LHS("S").S("A", "a").End()  // S  ->  A a
//    b.LHS("A").Epsilon()           // A  ->  #
//    g, err := b.Grammar()
//
// The first left hand side becomes the start symbol.
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// RuleBuilder is a builder type for a single alternative of a rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs Alternative
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build. The grammar will use DefaultEpsilon as the epsilon sentinel,
// unless set otherwise by WithEpsilon.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{g: NewGrammar(gname, DefaultEpsilon)}
}

// WithEpsilon sets the epsilon sentinel of the grammar to build. It has to be
// called before the first rule is added.
func (gb *GrammarBuilder) WithEpsilon(sym string) *GrammarBuilder {
	if gb.g.Size() > 0 {
		gb.err = fmt.Errorf("epsilon symbol must be set before adding rules")
		return gb
	}
	if sym != "" {
		gb.g.epsilon = sym
	}
	return gb
}

// LHS starts a new alternative for non-terminal s.
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	if s == "" || s == gb.g.epsilon {
		gb.err = fmt.Errorf("illegal left hand side symbol %q", s)
	}
	return &RuleBuilder{gb: gb, lhs: s, rhs: Alternative{}}
}

// S appends symbols to the right hand side of the rule.
func (rb *RuleBuilder) S(syms ...string) *RuleBuilder {
	for _, sym := range syms {
		if sym == "" {
			rb.gb.err = fmt.Errorf("empty symbol in rule for %s", rb.lhs)
			continue
		}
		rb.rhs = append(rb.rhs, sym)
	}
	return rb
}

// End closes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() Alternative {
	if rb.lhs != "" && rb.lhs != rb.gb.g.epsilon {
		rb.gb.g.AddProduction(rb.lhs, rb.rhs)
	}
	return rb.rhs
}

// Epsilon adds the rule LHS -> ε to the grammar. Symbols appended before
// are discarded.
func (rb *RuleBuilder) Epsilon() Alternative {
	rb.rhs = Alternative{rb.gb.g.epsilon}
	return rb.End()
}

// Grammar returns the grammar built so far, or an error if an illegal rule
// has been added.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if gb.g.Size() == 0 {
		return nil, fmt.Errorf("grammar %s has no rules", gb.g.Name)
	}
	return gb.g, nil
}

// SetStart overrides the start symbol of the grammar to build.
func (gb *GrammarBuilder) SetStart(nt string) *GrammarBuilder {
	gb.g.SetStart(nt)
	return gb
}

/*
Package ll implements prerequisites for LL(1) parsing.

Building a Grammar

Grammars are specified using a grammar builder object or loaded from text
(see package loader). Clients add rules, consisting of a left hand side
non-terminal and a sequence of symbols. Symbols are plain strings; whether a
symbol is a terminal or a non-terminal is derived from the grammar itself: a
symbol is a non-terminal if and only if it is the left hand side of some rule.
The epsilon symbol ("#" by default) denotes the empty word.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("E").S("T", "E'").End()        // E  ->  T E'
    b.LHS("E'").S("+", "T", "E'").End()  // E' ->  + T E'
    b.LHS("E'").Epsilon()                // E' ->  #
    b.LHS("T").S("id").End()             // T  ->  id
    g, err := b.Grammar()

Normalization

A grammar is prepared for predictive parsing by two passes, left factoring and
removal of immediate left recursion. Both passes return a new grammar and may
introduce fresh non-terminals, which are single upper case letters not yet in
use. An Allocator hands out these letters and has to be shared by all passes of
a single run:

    alloc := ll.NewAllocator(g)
    g1, err := ll.LeftFactor(g, alloc)
    g2, err := ll.RemoveLeftRecursion(g1, alloc)

Function Normalize performs both steps.

Left factoring is restricted: it factors alternatives which start with their own
left hand side non-terminal. Alternatives sharing any other common prefix are
left untouched.

Static Grammar Analysis

After normalization, the grammar is subjected to an analysis, which computes
FIRST and FOLLOW sets by fixed-point iteration.

    ga := ll.Analysis(g2)
    for _, N := range ga.Grammar().NonTerminals() {
        fmt.Printf("FIRST(%s) = %v\n", N, ga.First(N))
        fmt.Printf("FOLLOW(%s) = %v\n", N, ga.Follow(N))
    }

Parser Construction

Using grammar analysis as input, a predictive parsing table is constructed.
Entries are keyed by (non-terminal, lookahead terminal). If two alternatives of
a non-terminal claim the same lookahead, the alternative processed later
silently replaces the earlier one; no conflict is reported.

    gen := ll.NewTableGenerator(ga)
    T := gen.CreateTable()
    T.WriteTo(os.Stdout)   // one line per entry: "E' $ -> # "

The table is used by the parser in package predict.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gollo.ll'.
func tracer() tracing.Trace {
	return tracing.Select("gollo.ll")
}

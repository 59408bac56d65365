/*
Package predict provides a table driven predictive parser for LL(1) grammars.
Clients have to use the tools of package ll to prepare the parse table. The
parser uses the table to create a left derivation for a given input, provided
through a scanner interface.

Usage

Clients construct a grammar, normalize it and create a table:

	g, _, err := ll.Normalize(g)
	gen := ll.NewTableGenerator(ll.Analysis(g))
	T := gen.CreateTable()

Then parse some input:

	p := predict.NewParser(T)
	scan, _ := scanner.ProgramTokenizer("id + id * id")
	result, err := p.Parse(scan)

Error Recovery

The parser does not stop at the first syntax error. If no table entry exists
for the non-terminal on top of the stack and the current lookahead, the
non-terminal is discarded. If a terminal on top of the stack does not match
the lookahead, the terminal is discarded. In both cases an error is recorded
and parsing continues with the same lookahead. The input is accepted as soon
as the end marker "$" is on top of the stack and is the lookahead; syntax
errors recorded up to this point are reported with the result.

A missing end marker, i.e. running out of input before the stack is
reduced to "$", is a fatal error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predict

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/gollo"
	"github.com/npillmayer/gollo/ll"
	"github.com/npillmayer/gollo/ll/scanner"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gollo.ll'.
func tracer() tracing.Trace {
	return tracing.Select("gollo.ll")
}

// Fatal parse errors. They are returned together with a partial result.
var (
	ErrUnexpectedEnd  = errors.New("input ended unexpectedly")
	ErrStackExhausted = errors.New("parse stack exhausted before end of input")
	ErrParserStuck    = errors.New("parser is stuck")
	ErrNotInitialized = errors.New("predictive parser not initialized")
)

// stepsPerToken is the default step budget per input token.
const stepsPerToken = 1000

// Parser is a predictive parser type. Create and initialize one with
// predict.NewParser(...).
type Parser struct {
	G        *ll.Grammar
	table    *ll.Table
	maxSteps int
	noTrace  bool
}

// Option configures a parser.
type Option func(*Parser)

// MaxSteps sets the maximum number of parser transitions for a single parse.
// If n is 0, the configuration value 'parser.max-steps' is used, and if that is
// unset, a budget proportional to the input length.
func MaxSteps(n int) Option {
	return func(p *Parser) {
		p.maxSteps = n
	}
}

// WithoutTrace switches off recording of parser steps.
func WithoutTrace() Option {
	return func(p *Parser) {
		p.noTrace = true
	}
}

// NewParser creates a predictive parser for table T.
func NewParser(T *ll.Table, opts ...Option) *Parser {
	p := &Parser{table: T}
	if T != nil {
		p.G = T.Grammar()
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is the outcome of a parse.
type Result struct {
	Accepted bool          // input has been accepted, possibly with errors
	Errors   []*ParseError // syntax errors in order of occurence
	Trace    []Step        // parser transitions, starting with the initial configuration
}

// --- Parse errors ----------------------------------------------------------

// ErrorKind tells the kind of a syntax error.
type ErrorKind int8

const (
	NoProduction ErrorKind = iota // no table entry for (non-terminal, lookahead)
	Mismatch                      // terminal on the stack does not match the lookahead
)

func (k ErrorKind) String() string {
	switch k {
	case NoProduction:
		return "no production"
	case Mismatch:
		return "mismatch"
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// ParseError is a syntax error, recorded during a parse.
type ParseError struct {
	Kind      ErrorKind
	Top       string     // symbol on top of the stack
	Lookahead string     // lexeme of the current token
	After     string     // lexeme of the last token matched, if any
	Span      gollo.Span // span of the lookahead token
}

func (e *ParseError) Error() string {
	if e.Kind == NoProduction {
		return fmt.Sprintf("unexpected token %s after %s: no production for %s",
			e.Lookahead, e.After, e.Top)
	}
	return fmt.Sprintf("syntax error: expected %s before %s", e.Top, e.Lookahead)
}

// --- Parser steps ----------------------------------------------------------

// Action is the kind of a parser transition.
type Action int8

// Parser transitions
const (
	Start   Action = iota // initial configuration
	Predict               // non-terminal replaced by an alternative
	Match                 // terminal matched and input advanced
	Discard               // symbol discarded after a syntax error
	Accept                // input accepted
)

func (a Action) String() string {
	switch a {
	case Start:
		return "start"
	case Predict:
		return "predict"
	case Match:
		return "match"
	case Discard:
		return "discard"
	case Accept:
		return "accept"
	}
	return fmt.Sprintf("Action(%d)", a)
}

// Step is a snapshot of the parser configuration, taken after a transition.
type Step struct {
	Action    Action
	Rule      string   // rule applied by a Predict step, e.g. "E' -> + T E'"
	Stack     []string // stack contents, top first
	Lookahead string   // lookahead after the transition
	Remaining []string // unread input, including the lookahead
}

func (s Step) String() string {
	return fmt.Sprintf("%-8s [%s] | %s", s.Action, strings.Join(s.Stack, " "),
		strings.Join(s.Remaining, " "))
}

// --- Parsing ---------------------------------------------------------------

// Parse starts a new parse, given a scanner tokenizing the input. The tokenizer
// is read up to its first EOF token before parsing starts.
//
// Syntax errors do not stop the parser; they are collected in the result.
// A fatal error is returned together with the partial result.
func (p *Parser) Parse(scan scanner.Tokenizer) (*Result, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.G == nil || p.table == nil {
		tracer().Errorf("predictive parser not initialized")
		return nil, ErrNotInitialized
	}
	run := &parseRun{parser: p, result: &Result{}}
	for tok := scan.NextToken(); tok.TokType() != scanner.EOF; tok = scan.NextToken() {
		run.input = append(run.input, tok)
	}
	limit := p.stepLimit(len(run.input))
	run.stack = arraystack.New()
	run.stack.Push(ll.EndMarker)
	run.stack.Push(p.G.Start())
	run.record(Start, "")
	for steps := 0; ; steps++ {
		if steps >= limit {
			stuck(fmt.Sprintf("no decision after %d steps", steps))
			return run.result, ErrParserStuck
		}
		done, err := run.step()
		if done || err != nil {
			return run.result, err
		}
	}
}

func (p *Parser) stepLimit(inputLength int) int {
	if p.maxSteps > 0 {
		return p.maxSteps
	}
	if n := gconf.GetInt("parser.max-steps"); n > 0 {
		return n
	}
	return stepsPerToken * (inputLength + 1)
}

// parseRun holds the transient state of a single parse.
type parseRun struct {
	parser *Parser
	stack  *arraystack.Stack
	input  []gollo.Token
	cursor int
	after  string // last token matched
	result *Result
}

// lookahead returns the current token or, if the cursor is past the end of
// the input, nil.
func (run *parseRun) lookahead() gollo.Token {
	if run.cursor < len(run.input) {
		return run.input[run.cursor]
	}
	return nil
}

// step performs a single parser transition. It returns true if the parse has
// ended.
func (run *parseRun) step() (bool, error) {
	x, ok := run.stack.Peek()
	la := run.lookahead()
	if !ok {
		if la == nil {
			tracer().Errorf("parse stack and input exhausted")
			return true, ErrUnexpectedEnd
		}
		tracer().Errorf("parse stack exhausted with input %q left", la.Lexeme())
		return true, ErrStackExhausted
	}
	top := x.(string)
	if top == ll.EndMarker && la != nil && la.Lexeme() == ll.EndMarker {
		run.stack.Pop()
		run.result.Accepted = true
		run.record(Accept, "")
		tracer().Infof("input accepted with %d errors", len(run.result.Errors))
		return true, nil
	}
	if la == nil {
		tracer().Errorf("input ended unexpectedly, expected %s", top)
		return true, ErrUnexpectedEnd
	}
	G := run.parser.G
	tracer().Debugf("top = %s, lookahead = %q", top, la.Lexeme())
	if G.IsNonTerminal(top) {
		run.stack.Pop()
		alt, found := run.parser.table.Lookup(top, la.Lexeme())
		if !found {
			run.error(NoProduction, top, la)
			run.record(Discard, "")
			return false, nil
		}
		for i := len(alt) - 1; i >= 0; i-- {
			if alt[i] != G.Epsilon() {
				run.stack.Push(alt[i])
			}
		}
		rule := top + " -> " + alt.String()
		tracer().Debugf("predict %s", rule)
		run.record(Predict, rule)
		return false, nil
	}
	run.stack.Pop()
	if top == la.Lexeme() {
		run.after = la.Lexeme()
		run.cursor++
		run.record(Match, "")
		return false, nil
	}
	run.error(Mismatch, top, la)
	run.record(Discard, "")
	return false, nil
}

func (run *parseRun) error(kind ErrorKind, top string, la gollo.Token) {
	e := &ParseError{
		Kind:      kind,
		Top:       top,
		Lookahead: la.Lexeme(),
		After:     run.after,
		Span:      la.Span(),
	}
	tracer().Infof(e.Error())
	run.result.Errors = append(run.result.Errors, e)
}

func (run *parseRun) record(action Action, rule string) {
	if run.parser.noTrace {
		return
	}
	step := Step{Action: action, Rule: rule}
	for _, v := range run.stack.Values() {
		step.Stack = append(step.Stack, v.(string))
	}
	for _, tok := range run.input[run.cursor:] {
		step.Remaining = append(step.Remaining, tok.Lexeme())
	}
	if la := run.lookahead(); la != nil {
		step.Lookahead = la.Lexeme()
	}
	run.result.Trace = append(run.result.Trace, step)
}

func stuck(msg string) {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(`Predictive parser is stuck.

Configuration flag panic-on-parser-stuck is set to true. It is aimed at helping
to debug a parser and do a post-mortem of why it got stuck. However, if this is
a production environment and you did not expect this to panic, please unset
panic-on-parser-stuck to its default (false).

` + msg)
	}
}

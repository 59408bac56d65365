/*
Package scanner defines an interface for scanners to be used with parsers of
package predict, and provides scanners built on lexmachine.

Two tokenizers are pre-defined: ProgramTokenizer splits program text into
whitespace-delimited words, terminated by the end marker "$". RuleTokenizer
splits the right hand side of a grammar rule into symbols.

Clients may build their own tokenizers from a lexmachine lexer, using an
LMAdapter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/gollo"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gollo.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gollo.scanner")
}

// Token types of the pre-defined tokenizers.
const (
	EOF       gollo.TokType = -1 // end of input, identical to text/scanner.EOF
	Word      gollo.TokType = 1  // whitespace delimited word of program text
	EndMarker gollo.TokType = 2  // the end marker "$"
	Ident     gollo.TokType = 3  // identifier in a grammar rule
	Literal   gollo.TokType = 4  // one of ( ) + * in a grammar rule
	Other     gollo.TokType = 5  // any other run of characters in a grammar rule
)

// Tokenizer is a scanner interface.
//
// After the input is exhausted, NextToken returns tokens of type EOF.
type Tokenizer interface {
	NextToken() gollo.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// lexmachine scanners.
type DefaultToken struct {
	kind   gollo.TokType
	lexeme string
	Val    interface{}
	span   gollo.Span
}

// MakeDefaultToken creates a token from its parts.
func MakeDefaultToken(typ gollo.TokType, lexeme string, span gollo.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() gollo.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() gollo.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	return t.lexeme
}

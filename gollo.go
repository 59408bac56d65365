package gollo

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Scanners define their own constants;
// package scanner provides the ones used by the predictive parser.
type TokType int

// Token represents an input token. Tokens are produced by a scanner and are
// matched against terminals of a grammar.
//
// An LL(1) parser in this module compares terminals by lexeme, not by token
// type. The token type is used to tell ordinary tokens from the end marker and
// from the end of input:
//
//    TokType = Word        // an ordinary token
//    Lexeme  = "id"        // lexeme as it appeared in the input stream
//    Span    = 12…14       // occured from byte position 12 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans -----------------------------------------------------------------

// Span is a small type for capturing a run of input. A span denotes a start
// position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

package scanner

import (
	"sync"

	"github.com/timtadh/lexmachine"
)

// Symbols on the right hand side of a grammar rule are identifiers (a letter
// followed by letters, digits or apostrophes), one of the literals ( ) + *,
// or any other run of non-space characters, such as "#" or "->".
var ruleLexer struct {
	once    sync.Once
	adapter *LMAdapter
	err     error
}

var ruleLiterals = []string{"(", ")", "+", "*"}

func initRuleLexer() (*LMAdapter, error) {
	ruleLexer.once.Do(func() {
		tokenIds := make(map[string]int)
		for _, lit := range ruleLiterals {
			tokenIds[lit] = int(Literal)
		}
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|')*`), MakeToken("ID", int(Ident)))
			lexer.Add([]byte(`[^ \t\r\na-zA-Z\(\)\+\*]+`), MakeToken("OTHER", int(Other)))
			lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
		}
		ruleLexer.adapter, ruleLexer.err = NewLMAdapter(init, ruleLiterals, nil, tokenIds)
	})
	return ruleLexer.adapter, ruleLexer.err
}

// RuleTokenizer creates a tokenizer for a single alternative of a grammar rule.
func RuleTokenizer(rhs string) (*LMScanner, error) {
	adapter, err := initRuleLexer()
	if err != nil {
		return nil, err
	}
	return adapter.Scanner(rhs)
}

// SplitRule splits the right hand side of a grammar rule into symbols.
// An empty or all-blank rhs results in an empty slice.
func SplitRule(rhs string) ([]string, error) {
	scan, err := RuleTokenizer(rhs)
	if err != nil {
		return nil, err
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	syms := []string{}
	for tok := scan.NextToken(); tok.TokType() != EOF; tok = scan.NextToken() {
		syms = append(syms, tok.Lexeme())
	}
	return syms, scanErr
}

package scanner

import (
	"sync"

	"github.com/timtadh/lexmachine"
)

// Program text consists of words separated by spaces, tabs or newlines.
// The end marker "$" is a word of its own, even if not separated by whitespace.
var programLexer struct {
	once    sync.Once
	adapter *LMAdapter
	err     error
}

func initProgramLexer() (*LMAdapter, error) {
	programLexer.once.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`\$`), MakeToken("$", int(EndMarker)))
			lexer.Add([]byte(`[^ \t\r\n\$]+`), MakeToken("WORD", int(Word)))
			lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
		}
		programLexer.adapter, programLexer.err = NewLMAdapter(init, nil, nil, nil)
	})
	return programLexer.adapter, programLexer.err
}

// ProgramTokenizer creates a tokenizer for program text. One end marker "$"
// is appended to the text before scanning. Tokens have type Word or EndMarker;
// after the last token, EOF is returned.
func ProgramTokenizer(text string) (*LMScanner, error) {
	adapter, err := initProgramLexer()
	if err != nil {
		return nil, err
	}
	return adapter.Scanner(text + "$")
}

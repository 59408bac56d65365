package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

// repl starts interactive mode. Every line entered is parsed as program text.
// Input lines starting with ':' are commands:
//
//     :trace   toggle output of parser steps
//     :table   print the predictive table
//     :quit    leave
//
func repl(p *pipeline) error {
	rl, err := readline.New("gollo> ")
	if err != nil {
		tracer().Errorf(err.Error())
		return err
	}
	defer rl.Close()
	tracer().Infof("Quit with <ctrl>D")
	showTrace := false
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		switch line {
		case ":quit":
			return nil
		case ":trace":
			showTrace = !showTrace
			pterm.Info.Println(fmt.Sprintf("trace output is %v", showTrace))
			continue
		case ":table":
			reportTable(p.table)
			continue
		}
		result, err := parseText(p, line)
		if showTrace && result != nil {
			reportTrace(result)
		}
		reportErrors(result, err)
	}
	fmt.Println("Good bye!")
	return nil
}

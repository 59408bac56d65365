/*
Command gollo prepares context-free grammars for predictive parsing and parses
program text with them.

	gollo analyze grammar.txt              # normalize, print FIRST/FOLLOW sets and table
	gollo parse grammar.txt program.txt    # additionally parse a program
	gollo repl grammar.txt                 # parse lines entered interactively

Grammars are read from a line oriented format, one rule per line:

	E  -> T E'
	E' -> + T E' | #

The predictive table is written to a file (default LL1Table.txt).

Configuration is read from a NestedText file 'gollo.nt' at the usual
configuration locations, if present. Command line flags take precedence.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gollo.cli'.
func tracer() tracing.Trace {
	return tracing.Select("gollo.cli")
}

func main() {
	initDisplay()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

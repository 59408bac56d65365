/*
Package gollo is an LL(1) parsing toolbox.

GoLLo takes a context-free grammar in textual form, normalizes it for
one-token-lookahead prediction, computes FIRST and FOLLOW sets, builds a
predictive parsing table and drives a table-based predictive parser with
panic-mode error recovery. Package structure is as follows:

■ ll: Package ll implements the grammar model, grammar normalization (left
factoring and left recursion removal), FIRST/FOLLOW analysis and construction
of predictive parsing tables.

■ ll/predict: Package predict implements a stack-based predictive parser
driven by a table from package ll.

■ ll/scanner: Package scanner defines the tokenizer interface for the parser
and provides lexmachine-based scanners for program text and grammar sources.

■ ll/loader: Package loader reads grammars from line-based text sources.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gollo

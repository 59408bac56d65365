/*
Package loader reads grammars from a line based text format.

Every line holds one rule, with alternatives separated by '|':

    E  -> T E'
    E' -> + T E' | #

Lines without an arrow "->" are ignored, as are empty lines. Rules for
the same left hand side on several lines are merged. The left hand side of the
first rule is the start symbol. An empty alternative derives the empty word,
as does the epsilon symbol ("#" by default).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/gollo/ll"
	"github.com/npillmayer/gollo/ll/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gollo.ll'.
func tracer() tracing.Trace {
	return tracing.Select("gollo.ll")
}

// Option configures the loader.
type Option func(*options)

type options struct {
	epsilon string
}

// Epsilon sets the symbol denoting the empty word.
func Epsilon(sym string) Option {
	return func(o *options) {
		o.epsilon = sym
	}
}

// Load reads a grammar from r. name is used as the grammar's name.
func Load(name string, r io.Reader, opts ...Option) (*ll.Grammar, error) {
	o := options{epsilon: ll.DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	g := ll.NewGrammar(name, o.epsilon)
	lineno := 0
	s := bufio.NewScanner(r)
	for s.Scan() {
		lineno++
		line := s.Text()
		arrow := strings.Index(line, "->")
		if arrow < 0 {
			if strings.TrimSpace(line) != "" {
				tracer().Debugf("%s:%d: no arrow, skipping line", name, lineno)
			}
			continue
		}
		lhs := strings.Trim(line[:arrow], " \t")
		if lhs == "" {
			return nil, fmt.Errorf("%s:%d: missing left hand side", name, lineno)
		}
		if lhs == o.epsilon {
			return nil, fmt.Errorf("%s:%d: epsilon %q as left hand side", name, lineno, lhs)
		}
		var alts []ll.Alternative
		for _, rhs := range strings.Split(line[arrow+2:], "|") {
			syms, err := scanner.SplitRule(rhs)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, lineno, err)
			}
			alts = append(alts, ll.Alternative(syms))
		}
		g.AddProduction(lhs, alts...)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading grammar %s: %w", name, err)
	}
	if g.Size() == 0 {
		return nil, fmt.Errorf("grammar %s has no rules", name)
	}
	tracer().Infof("loaded grammar %s with %d rules", name, g.Size())
	return g, nil
}

// LoadFile reads a grammar from a file. The grammar is named after the file.
func LoadFile(path string, opts ...Option) (*ll.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		tracer().Errorf("cannot open grammar file: %v", err)
		return nil, fmt.Errorf("loading grammar: %w", err)
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Load(name, f, opts...)
}

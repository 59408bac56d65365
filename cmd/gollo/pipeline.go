package main

import (
	"github.com/npillmayer/gollo/ll"
	"github.com/npillmayer/gollo/ll/loader"
	"github.com/npillmayer/schuko/gconf"
)

// pipeline holds the results of every stage of grammar preparation.
type pipeline struct {
	source     *ll.Grammar
	factored   *ll.Grammar
	normalized *ll.Grammar
	alloc      *ll.Allocator
	analysis   *ll.LLAnalysis
	table      *ll.Table
}

// loadPipeline loads a grammar file and prepares a predictive table for it.
// The table is written to the configured table file, if any.
func loadPipeline(path string) (*pipeline, error) {
	var opts []loader.Option
	if eps := gconf.GetString(keyEpsilon); eps != "" {
		opts = append(opts, loader.Epsilon(eps))
	}
	g, err := loader.LoadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	p, err := buildPipeline(g)
	if err != nil {
		return nil, err
	}
	if out := gconf.GetString(keyTable); out != "" {
		if err = ll.WriteTableFile(out, p.table); err != nil {
			return nil, err
		}
		tracer().Infof("predictive table written to %s", out)
	}
	return p, nil
}

// buildPipeline runs left factoring, left recursion removal, grammar analysis
// and table construction for g.
func buildPipeline(g *ll.Grammar) (*pipeline, error) {
	p := &pipeline{source: g, alloc: ll.NewAllocator(g)}
	var err error
	if p.factored, err = ll.LeftFactor(g, p.alloc); err != nil {
		return nil, err
	}
	if p.normalized, err = ll.RemoveLeftRecursion(p.factored, p.alloc); err != nil {
		return nil, err
	}
	p.normalized.Dump()
	p.analysis = ll.Analysis(p.normalized)
	gen := ll.NewTableGenerator(p.analysis)
	gen.CreateTable()
	p.table = gen.Table()
	tracer().Infof("grammar %s: %d fresh non-terminals, fingerprint %s",
		g.Name, len(p.alloc.Issued()), p.normalized.Fingerprint())
	return p, nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gollo/ll"
	"github.com/npillmayer/gollo/ll/predict"
	"github.com/pterm/pterm"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// altString renders an alternative, with the empty alternative shown as epsilon.
func altString(g *ll.Grammar, a ll.Alternative) string {
	if len(a) == 0 {
		return g.Epsilon()
	}
	return a.String()
}

func reportGrammar(title string, g *ll.Grammar) {
	pterm.DefaultSection.Println(title)
	data := pterm.TableData{{"Non-terminal", "Alternatives"}}
	g.EachNonTerminal(func(nt string, alts []ll.Alternative) {
		rhs := make([]string, len(alts))
		for i, a := range alts {
			rhs[i] = altString(g, a)
		}
		data = append(data, []string{nt, strings.Join(rhs, " | ")})
	})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Println(fmt.Sprintf("start symbol %s, terminals %s", g.Start(),
		strings.Join(g.Terminals(), " ")))
}

// grammarDiff returns a line diff between the listings of two grammars, or
// the empty string if they are identical.
func grammarDiff(before, after *ll.Grammar) string {
	a, b := before.String(), after.String()
	if a == b {
		return ""
	}
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line != "" {
				sb.WriteString(prefix + line)
			}
		}
	}
	return sb.String()
}

func reportChanges(before, after *ll.Grammar) {
	d := grammarDiff(before, after)
	if d == "" {
		pterm.Info.Println("no changes")
		return
	}
	fmt.Print(d)
}

func reportSets(ga *ll.LLAnalysis) {
	pterm.DefaultSection.Println("FIRST and FOLLOW sets")
	data := pterm.TableData{{"Non-terminal", "FIRST", "FOLLOW"}}
	for _, nt := range ga.Grammar().NonTerminals() {
		data = append(data, []string{nt, ga.First(nt).String(), ga.Follow(nt).String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func reportTable(T *ll.Table) {
	pterm.DefaultSection.Println("Predictive parsing table")
	g := T.Grammar()
	header := append([]string{`NT\T`}, T.Lookaheads()...)
	data := pterm.TableData{header}
	for _, nt := range T.NonTerminals() {
		row := []string{nt}
		for _, la := range T.Lookaheads() {
			cell := ""
			if a, ok := T.Lookup(nt, la); ok {
				cell = nt + " -> " + altString(g, a)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Println(fmt.Sprintf("%d entries", T.Size()))
}

func reportTrace(result *predict.Result) {
	pterm.DefaultSection.Println("Parse")
	data := pterm.TableData{{"#", "Action", "Stack", "Input"}}
	for i, step := range result.Trace {
		action := step.Action.String()
		if step.Rule != "" {
			action += " " + step.Rule
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			action,
			strings.Join(step.Stack, " "),
			strings.Join(step.Remaining, " "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func reportErrors(result *predict.Result, err error) {
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	if result == nil {
		return
	}
	for _, e := range result.Errors {
		pterm.Error.Println(e.Error())
	}
	if result.Accepted {
		if len(result.Errors) == 0 {
			pterm.Success.Println("input accepted, no errors found")
		} else {
			pterm.Info.Println(fmt.Sprintf("input accepted with %d errors", len(result.Errors)))
		}
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/gollo/ll/predict"
	"github.com/npillmayer/gollo/ll/scanner"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gollo",
	Short: "LL(1) grammar preparation and predictive parsing",
	Long: `gollo normalizes context-free grammars for predictive parsing,
computes FIRST and FOLLOW sets, builds an LL(1) table and parses input with it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupConfiguration(cmd)
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <grammar>",
	Short: "Normalize a grammar and build its predictive table",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		p, err := loadPipeline(args[0])
		if err != nil {
			return err
		}
		reportPipeline(p)
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <grammar> <program>",
	Short: "Parse a program file with a predictive parser for a grammar",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		p, err := loadPipeline(args[0])
		if err != nil {
			return err
		}
		reportPipeline(p)
		text, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading program: %w", err)
		}
		result, err := parseText(p, string(text))
		if result != nil {
			reportTrace(result)
		}
		reportErrors(result, err)
		if err != nil {
			return err
		}
		if n := len(result.Errors); n > 0 {
			return fmt.Errorf("%d syntax errors", n)
		}
		return nil
	},
}

var replCmd = &cobra.Command{
	Use:   "repl <grammar>",
	Short: "Interactively parse lines of input with a predictive parser for a grammar",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		p, err := loadPipeline(args[0])
		if err != nil {
			return err
		}
		reportGrammar("Normalized grammar", p.normalized)
		return repl(p)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagValues.trace, "trace", "Error", "Trace level [Debug|Info|Error]")
	flags.StringVar(&flagValues.adapter, "tracer", "go", "Trace adapter [go|logrus]")
	flags.BoolVar(&flagValues.diff, "diff", false, "Show the changes of each normalization pass as a diff")
	flags.StringVar(&flagValues.epsilon, "epsilon", "#", "Symbol denoting the empty word")
	flags.StringVar(&flagValues.table, "table", "LL1Table.txt", "Output file for the predictive table (empty for none)")
	flags.IntVar(&flagValues.maxSteps, "max-steps", 0, "Maximum number of parser steps (0 for a default depending on input length)")
	rootCmd.AddCommand(analyzeCmd, parseCmd, replCmd)
}

func reportPipeline(p *pipeline) {
	reportGrammar("Grammar", p.source)
	reportGrammar("After left factoring", p.factored)
	if flagValues.diff {
		reportChanges(p.source, p.factored)
	}
	reportGrammar("After left recursion removal", p.normalized)
	if flagValues.diff {
		reportChanges(p.factored, p.normalized)
	}
	reportSets(p.analysis)
	reportTable(p.table)
}

// parseText parses program text with the predictive table of p.
func parseText(p *pipeline, text string) (*predict.Result, error) {
	scan, err := scanner.ProgramTokenizer(text)
	if err != nil {
		return nil, err
	}
	parser := predict.NewParser(p.table)
	result, err := parser.Parse(scan)
	if errors.Is(err, predict.ErrParserStuck) {
		tracer().Errorf("parser stuck; the grammar may contain indirect left recursion")
	}
	return result, err
}

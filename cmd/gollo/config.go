package main

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// Configuration keys
const (
	keyEpsilon  = "epsilon"
	keyTable    = "table"
	keyMaxSteps = "parser.max-steps"
	keyTrace    = "tracelevel"
	keyAdapter  = "tracing.adapter"
)

// tracerKeys are the tracers whose level is set by flag --trace.
var tracerKeys = []string{"root", "gollo.ll", "gollo.scanner", "gollo.cli"}

// flagValues holds the persistent command line flags.
var flagValues struct {
	trace    string
	adapter  string
	diff     bool
	epsilon  string
	table    string
	maxSteps int
}

// setupConfiguration initializes the global configuration from configuration
// files, overridden by command line flags, and wires up tracing.
func setupConfiguration(cmd *cobra.Command) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "gollo", []string{"nt"})
	gconf.Initialize(conf)
	override := func(flag, key string, value interface{}) {
		if cmd.Flags().Changed(flag) || !conf.IsSet(key) {
			conf.Set(key, value)
		}
	}
	override("tracer", keyAdapter, flagValues.adapter)
	override("epsilon", keyEpsilon, flagValues.epsilon)
	override("table", keyTable, flagValues.table)
	override("max-steps", keyMaxSteps, flagValues.maxSteps)
	for _, t := range tracerKeys {
		override("trace", keyTrace+"."+t, flagValues.trace)
	}
	if err := trace2go.ConfigureRoot(conf, keyTrace, trace2go.ReplaceTracers(true),
		trace2go.AdapterKey(keyAdapter)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("configuration initialized, epsilon = %q, table = %q",
		gconf.GetString(keyEpsilon), gconf.GetString(keyTable))
	return nil
}

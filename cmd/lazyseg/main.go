/*
Command lazyseg runs operation scripts against lazy segment trees.

Usage:

	lazyseg run [flags] [file]
	lazyseg algebras

Run reads a script from file, or from stdin if no file is given, and prints
one line for every get or query operation. Flags --algebra and --size
override the settings of the script.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	os.Exit(Main())
}

// Main runs the lazyseg command and returns the code for passing to os.Exit.
func Main() int {
	root := newRootCmd()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		errorColor(root).Fprintln(root.ErrOrStderr(), "lazyseg:", err)
		return 1
	}
	return 0
}

// Global flags.
const (
	flagColor = "color"
	flagTrace = "trace"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lazyseg",
		Short:         "lazyseg runs range update and range query scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := checkColorMode(cmd); err != nil {
				return err
			}
			return setupTracing(cmd)
		},
	}
	addGlobalFlags(root.PersistentFlags())
	root.AddCommand(newRunCmd(), newAlgebrasCmd())
	return root
}

func addGlobalFlags(f *pflag.FlagSet) {
	f.String(flagColor, "auto", "colorize output: auto, always or never")
	f.String(flagTrace, "", "trace to stderr with level debug, info or error")
}

// setupTracing installs a Go logger as tracer for all packages, if tracing
// has been requested.
func setupTracing(cmd *cobra.Command) error {
	level, _ := cmd.Root().PersistentFlags().GetString(flagTrace)
	if level == "" {
		return nil
	}
	switch level {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("invalid trace level %q", level)
	}
	tracer := gologadapter.New()
	tracer.SetOutput(cmd.ErrOrStderr())
	tracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	gtrace.CoreTracer = tracer
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
	return nil
}

func checkColorMode(cmd *cobra.Command) error {
	mode, _ := cmd.Root().PersistentFlags().GetString(flagColor)
	switch mode {
	case "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("invalid color mode %q", mode)
}

// useColor decides from the --color flag whether output is colorized.
// In mode auto, colors are used if stdout is a terminal.
func useColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString(flagColor)
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorFor(cmd *cobra.Command, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if useColor(cmd) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func errorColor(cmd *cobra.Command) *color.Color {
	return colorFor(cmd, color.FgRed)
}

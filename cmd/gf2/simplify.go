package main

import (
	"log/slog"

	"github.com/benbjohnson/gf2"
	"github.com/benbjohnson/gf2/parse"
	"github.com/spf13/cobra"
)

// exprResult is the YAML output of the expression commands.
type exprResult struct {
	Input  string `yaml:"input"`
	Result string `yaml:"result"`
}

// NewSimplifyCommand creates the simplify command.
func NewSimplifyCommand(rootOpts *RootOptions) *cobra.Command {
	return newExprCommand(rootOpts, "simplify <expr>", "Simplify a formula to its canonical form", func(e *gf2.Node) {
		gf2.Simplify(e)
	})
}

// NewESFCommand creates the esf command.
func NewESFCommand(rootOpts *RootOptions) *cobra.Command {
	return newExprCommand(rootOpts, "esf <expr>", "Rewrite disjunctions as symmetric functions and expand them", func(e *gf2.Node) {
		gf2.OrToESF(e)
		gf2.Simplify(e)
		gf2.ExpandESF(e)
		gf2.Simplify(e)
	})
}

// NewOrsCommand creates the ors command.
func NewOrsCommand(rootOpts *RootOptions) *cobra.Command {
	return newExprCommand(rootOpts, "ors <expr>", "Simplify a formula and recover its disjunctions", func(e *gf2.Node) {
		gf2.Simplify(e)
		gf2.IdentifyOrs(e)
	})
}

func newExprCommand(rootOpts *RootOptions, use, short string, fn func(e *gf2.Node)) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpr(rootOpts, args[0], fn, cmd)
		},
	}
}

func runExpr(rootOpts *RootOptions, src string, fn func(e *gf2.Node), cmd *cobra.Command) error {
	syms := gf2.NewSymbols()
	e, err := parse.Parse(src, syms)
	if err != nil {
		return err
	}

	slog.Debug("parsed", "cmd", cmd.Name(), "expr", gf2.Format(e, syms), "symbols", syms.Len())
	fn(&e)

	result := gf2.Format(e, syms)
	return newOutputFormatter(rootOpts, cmd).Write(result, exprResult{Input: src, Result: result})
}

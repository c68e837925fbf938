package main

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/gf2"
	"github.com/benbjohnson/gf2/parse"
	"github.com/spf13/cobra"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	Table bool
}

// evalResult is the YAML output of the eval command.
type evalResult struct {
	Expr    string    `yaml:"expr"`
	Value   *int      `yaml:"value,omitempty"`
	Symbols []string  `yaml:"symbols,omitempty"`
	Table   []evalRow `yaml:"table,omitempty"`
}

type evalRow struct {
	Inputs []int `yaml:"inputs,flow"`
	Value  int   `yaml:"value"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{}

	cmd := &cobra.Command{
		Use:   "eval <expr> [name=0|1...]",
		Short: "Evaluate a formula",
		Long: `Evaluate a formula for the given symbol values.

With --table, every assignment of the formula's symbols is evaluated and
printed as a truth table. Symbols are ordered by first appearance.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Table, "table", false, "print the truth table")

	return cmd
}

func runEval(rootOpts *RootOptions, opts *EvalOptions, src string, bindings []string, cmd *cobra.Command) error {
	syms := gf2.NewSymbols()
	e, err := parse.Parse(src, syms)
	if err != nil {
		return err
	}
	out := newOutputFormatter(rootOpts, cmd)

	if opts.Table {
		if len(bindings) > 0 {
			return fmt.Errorf("eval: --table does not accept symbol values")
		}
		return writeTruthTable(out, src, e, syms)
	}

	values := make(map[uint32]bool, len(bindings))
	for _, b := range bindings {
		name, value, ok := strings.Cut(b, "=")
		if !ok || (value != "0" && value != "1") {
			return fmt.Errorf("eval: invalid binding %q: expected name=0 or name=1", b)
		}
		s, ok := syms.Lookup(name)
		if !ok {
			return fmt.Errorf("eval: symbol %q does not appear in formula", name)
		}
		index, _ := s.SymbolIndex()
		values[index] = value == "1"
	}

	v, err := gf2.NewNodeEvaluator(values).Evaluate(e)
	if err != nil {
		return err
	}
	bit := boolToInt(v)
	return out.Write(fmt.Sprint(bit), evalResult{Expr: src, Value: &bit})
}

func writeTruthTable(out *OutputFormatter, src string, e gf2.Node, syms *gf2.Symbols) error {
	vars := gf2.NewSymbolVector(0, syms.Len())
	if len(vars) > 16 {
		return fmt.Errorf("eval: too many symbols for a truth table: %d", len(vars))
	}

	result := evalResult{Expr: src}
	var text strings.Builder
	for _, s := range vars {
		name := gf2.Format(s, syms)
		result.Symbols = append(result.Symbols, name)
		fmt.Fprintf(&text, "%s ", name)
	}
	text.WriteString("| f\n")

	for x := uint64(0); x < 1<<uint(len(vars)); x++ {
		v, err := gf2.NewNodeEvaluatorFromVector(vars, x).Evaluate(e)
		if err != nil {
			return err
		}

		row := evalRow{Value: boolToInt(v)}
		for i := range vars {
			bit := int(x>>uint(i)) & 1
			row.Inputs = append(row.Inputs, bit)
			fmt.Fprintf(&text, "%*d ", len(result.Symbols[i]), bit)
		}
		fmt.Fprintf(&text, "| %d\n", row.Value)
		result.Table = append(result.Table, row)
	}

	return out.Write(strings.TrimSuffix(text.String(), "\n"), result)
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

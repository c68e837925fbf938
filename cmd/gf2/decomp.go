package main

import (
	"errors"
	"log/slog"

	"github.com/benbjohnson/gf2"
	"github.com/benbjohnson/gf2/parse"
	"github.com/spf13/cobra"
)

// DecompOptions holds flags for the decomp command.
type DecompOptions struct {
	File string
}

// System is the YAML input of the decomp command.
type System struct {
	Symbols []string `yaml:"symbols"`
	Targets []string `yaml:"targets"`
}

// decompResult is the YAML output of the decomp command.
type decompResult struct {
	NL       []string `yaml:"nl"`
	Matrix   [][]int  `yaml:"matrix"`
	Constant []int    `yaml:"constant,flow"`
}

// NewDecompCommand creates the decomp command.
func NewDecompCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecompOptions{}

	cmd := &cobra.Command{
		Use:   "decomp -f <system.yaml>",
		Short: "Split a system of formulas into nonlinear and affine parts",
		Long: `Split every target formula of a system into a nonlinear part and an
affine part M*X + V over the listed symbols.

The system file lists the symbols in order and the target formulas:

  symbols: [a, b, c]
  targets:
    - a*b + c + 1
    - a + b`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecomp(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "system file (- for stdin)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runDecomp(rootOpts *RootOptions, opts *DecompOptions, cmd *cobra.Command) error {
	var sys System
	if err := readYAMLFile(cmd, opts.File, &sys); err != nil {
		return err
	}
	if len(sys.Symbols) == 0 {
		return errors.New("decomp: no symbols")
	}

	syms := gf2.NewSymbols()
	symbols := make(gf2.Vector, len(sys.Symbols))
	for i, name := range sys.Symbols {
		symbols[i] = syms.Symbol(name)
	}

	targets, err := parse.ParseVector(sys.Targets, syms)
	if err != nil {
		return err
	}
	gf2.SimplifyVector(targets, workerOptions(rootOpts)...)

	slog.Debug("decomposing", "symbols", len(symbols), "targets", len(targets))
	app, err := gf2.VectorialDecomp(symbols, targets)
	if err != nil {
		return err
	}

	result := decompResult{
		Matrix:   matrixRows(app.Aff.Matrix()),
		Constant: vectorBits(app.Aff.Constant()),
	}
	for _, e := range app.NL.Vector() {
		result.NL = append(result.NL, gf2.Format(e, syms))
	}
	return newOutputFormatter(rootOpts, cmd).Write(gf2.FormatApp(app, syms), result)
}

// matrixRows returns the rows of an immediate matrix as bits.
func matrixRows(m *gf2.Matrix) [][]int {
	rows := make([][]int, m.NRows())
	for i := range rows {
		rows[i] = vectorBits(m.Row(i))
	}
	return rows
}

// vectorBits returns the bits of an immediate vector. Other entries are -1.
func vectorBits(v gf2.Vector) []int {
	bits := make([]int, len(v))
	for i, e := range v {
		b, err := e.ImmValue()
		if err != nil {
			bits[i] = -1
			continue
		}
		bits[i] = boolToInt(b)
	}
	return bits
}

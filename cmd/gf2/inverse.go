package main

import (
	"errors"
	"fmt"

	"github.com/benbjohnson/gf2"
	"github.com/spf13/cobra"
)

// InverseOptions holds flags for the inverse command.
type InverseOptions struct {
	File string
}

// MatrixFile is the YAML input of the inverse command.
type MatrixFile struct {
	Rows [][]int `yaml:"rows"`
}

type inverseResult struct {
	Rank    int     `yaml:"rank"`
	Inverse [][]int `yaml:"inverse"`
}

// NewInverseCommand creates the inverse command.
func NewInverseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InverseOptions{}

	cmd := &cobra.Command{
		Use:   "inverse -f <matrix.yaml>",
		Short: "Invert a square matrix of bits",
		Long: `Invert a square matrix over GF(2). The matrix file lists the rows:

  rows:
    - [1, 1]
    - [0, 1]`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInverse(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "matrix file (- for stdin)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runInverse(rootOpts *RootOptions, opts *InverseOptions, cmd *cobra.Command) error {
	var f MatrixFile
	if err := readYAMLFile(cmd, opts.File, &f); err != nil {
		return err
	}

	m, err := newBitMatrix(f.Rows)
	if err != nil {
		return err
	}

	_, _, _, rank := m.TFactorize()
	inv := m.Inverse()
	if inv.IsEmpty() {
		return fmt.Errorf("inverse: matrix is not invertible (rank %d of %d)", rank, m.NRows())
	}

	return newOutputFormatter(rootOpts, cmd).Write(
		gf2.FormatMatrix(inv, nil),
		inverseResult{Rank: rank, Inverse: matrixRows(inv)},
	)
}

// newBitMatrix returns the immediate matrix with the given rows of bits.
func newBitMatrix(rows [][]int) (*gf2.Matrix, error) {
	if len(rows) == 0 {
		return nil, errors.New("matrix: no rows")
	}

	ncols := len(rows[0])
	var elts []gf2.Node
	for i, row := range rows {
		if len(row) != ncols {
			return nil, fmt.Errorf("matrix: row %d: expected %d columns, got %d", i, ncols, len(row))
		}
		for j, b := range row {
			if b != 0 && b != 1 {
				return nil, fmt.Errorf("matrix: row %d column %d: invalid bit %d", i, j, b)
			}
			elts = append(elts, gf2.Imm(b == 1))
		}
	}
	return gf2.NewMatrixFrom(ncols, elts...)
}

package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "yaml"
	Workers int
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "yaml"}

// NewRootCommand creates the root command for the gf2 CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gf2",
		Short: "Boolean algebra over GF(2)",
		Long: `gf2 simplifies boolean formulas to a canonical form over GF(2).

Formulas use + or ^ for XOR, * or && for AND, || for OR, ! for NOT and
esf(k, a, b, ...) for elementary symmetric functions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|yaml)")
	cmd.PersistentFlags().IntVar(&opts.Workers, "workers", 0, "vector workers (0 uses GOMAXPROCS)")

	// Add subcommands
	cmd.AddCommand(NewSimplifyCommand(opts))
	cmd.AddCommand(NewESFCommand(opts))
	cmd.AddCommand(NewOrsCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewDecompCommand(opts))
	cmd.AddCommand(NewInverseCommand(opts))

	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/gf2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// OutputFormatter writes command results as text or YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func newOutputFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// Write outputs text in text mode and data encoded as YAML in yaml mode.
func (f *OutputFormatter) Write(text string, data interface{}) error {
	if f.Format == "yaml" {
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(f.Writer, text)
	return err
}

// workerOptions returns the vector pass options of the root flags.
func workerOptions(opts *RootOptions) []gf2.Option {
	if opts.Workers <= 0 {
		return nil
	}
	return []gf2.Option{gf2.WithWorkers(opts.Workers)}
}

// readYAMLFile decodes the YAML file at path into v. "-" reads from stdin.
func readYAMLFile(cmd *cobra.Command, path string, v interface{}) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if err := yaml.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/npillmayer/lazyseg/internal/script"
)

// Flags of command run.
const (
	flagAlgebra = "algebra"
	flagSize    = "size"
	flagFormat  = "format"
	flagVariant = "variant"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "run a script and print the results of get and query operations",
		Long: `Run reads a script from file, or from stdin if no file is given.

Scripts are read in text format unless --format is yaml or the file name
ends in .yaml or .yml. Every get and query operation prints one line.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScript,
	}
	addRunFlags(cmd.Flags())
	return cmd
}

func addRunFlags(f *pflag.FlagSet) {
	f.StringP(flagAlgebra, "a", "", "algebra to use, overrides the script (see 'lazyseg algebras')")
	f.IntP(flagSize, "n", 0, "number of elements, overrides the script")
	f.String(flagFormat, "", "script format: text or yaml")
	f.String(flagVariant, string(script.Iterative), "tree variant: iterative or topdown")
}

func runScript(cmd *cobra.Command, args []string) error {
	opts := script.Options{}
	opts.Algebra, _ = cmd.Flags().GetString(flagAlgebra)
	opts.Size, _ = cmd.Flags().GetInt(flagSize)
	variant, _ := cmd.Flags().GetString(flagVariant)
	opts.Variant = script.Variant(variant)
	switch opts.Variant {
	case script.Iterative, script.TopDown:
	default:
		return fmt.Errorf("invalid tree variant %q", variant)
	}
	if opts.Size < 0 {
		return fmt.Errorf("invalid size %d", opts.Size)
	}

	name, in := "<stdin>", cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		name, in = args[0], f
	}
	s, err := parse(cmd, name, in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	results, err := s.Run(opts)
	out := colorFor(cmd, color.FgCyan)
	for _, r := range results {
		out.Fprintln(cmd.OutOrStdout(), r.Output)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func parse(cmd *cobra.Command, name string, in io.Reader) (*script.Script, error) {
	format, _ := cmd.Flags().GetString(flagFormat)
	if format == "" {
		switch filepath.Ext(name) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "text"
		}
	}
	switch format {
	case "text":
		return script.Parse(in)
	case "yaml":
		return script.ParseYAML(in)
	}
	return nil, fmt.Errorf("invalid script format %q", format)
}

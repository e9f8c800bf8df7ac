package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/npillmayer/lazyseg/internal/script"
)

func newAlgebrasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algebras",
		Short: "list the algebras scripts can be run with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := colorFor(cmd, color.Bold)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, a := range script.Algebras() {
				fmt.Fprintf(w, "%s\t%s\n", name.Sprint(a.Name), a.Description)
			}
			return w.Flush()
		},
	}
}

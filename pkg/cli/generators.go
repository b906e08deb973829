package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var generatorsCmd = &cobra.Command{
	Use:     "generators",
	Aliases: []string{"ls"},
	Short:   "List available generators and their descriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		generators := newRenderer(newLogger()).Generators()

		names := make([]string, 0, len(generators))
		for name := range generators {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDESCRIPTION")
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%s\n", name, generators[name])
		}
		return w.Flush()
	},
}

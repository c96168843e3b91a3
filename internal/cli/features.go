package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/reactgen-labs/reactgen/internal/deps"
	"github.com/reactgen-labs/reactgen/internal/skeleton"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(featuresCmd)
}

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List optional feature modules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FLAG\tPACKAGES\tDESCRIPTION")
		for _, f := range skeleton.Features() {
			groups := deps.Groups(skeleton.Flags{}.With(f.ID))
			pkgs := groups[len(groups)-1].Args()
			fmt.Fprintf(w, "--%s\t%d\t%s\n", f.ID, len(pkgs), f.Description)
		}
		return w.Flush()
	},
}

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/pdrpinto/search"
	"github.com/spf13/cobra"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the available search strategies",
	Args:  cobra.NoArgs,
	RunE:  runStrategies,
}

var strategyDescriptions = []struct {
	name, summary string
}{
	{search.NameBFS, "breadth-first, fewest steps"},
	{search.NameDFS, "depth-first with an explored set"},
	{search.NameDepthLimited, "depth-first up to --limit, reports cutoff"},
	{search.NameIterativeDeepening, "depth-limited rounds with a growing limit"},
	{search.NameUniformCost, "cheapest path first"},
	{search.NameAStar, "cheapest path guided by the problem heuristic"},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}

func runStrategies(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, s := range strategyDescriptions {
		fmt.Fprintf(w, "%s\t%s\n", s.name, s.summary)
	}
	return w.Flush()
}

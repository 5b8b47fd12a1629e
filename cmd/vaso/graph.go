package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/eshan-bhimani/vaso-map/internal/ui"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:     "graph",
	Short:   "Dump the whole vessel graph as nodes and edges",
	GroupID: "views",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := vesselClient.GetGraph(context.Background())
		if err != nil {
			return fmt.Errorf("getting graph: %w", err)
		}

		if jsonOutput {
			printJSON(g)
			return nil
		}

		byID := make(map[int64]string, len(g.Nodes))
		for _, n := range g.Nodes {
			byID[n.ID] = n.Name
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, e := range g.Edges {
			label := ""
			if e.Label != "" {
				label = ui.RenderMuted(e.Label)
			}
			fmt.Fprintf(w, "%s\t->\t%s\t%s\n", byID[e.Source], byID[e.Target], label)
		}
		w.Flush()

		fmt.Printf("\n%d vessels, %d edges\n", len(g.Nodes), len(g.Edges))
		return nil
	},
}

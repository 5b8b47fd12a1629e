package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var reloadCmd = &cobra.Command{
	Use:     "reload",
	Short:   "Rebuild the server's in-memory graph from the database",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := vesselClient.Reload(context.Background())
		if err != nil {
			return fmt.Errorf("reloading dataset: %w", err)
		}

		if jsonOutput {
			printJSON(resp)
			return nil
		}

		fmt.Printf("dataset reloaded at %s\n\n", resp.LoadedAt.Format("2006-01-02 15:04:05"))
		printStats(resp.Stats)
		return nil
	},
}

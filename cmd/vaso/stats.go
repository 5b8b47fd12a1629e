package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show vessel graph statistics",
	GroupID: "views",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := vesselClient.GetStats(context.Background())
		if err != nil {
			return fmt.Errorf("getting stats: %w", err)
		}

		if jsonOutput {
			printJSON(stats)
		} else {
			printStats(stats)
		}
		return nil
	},
}

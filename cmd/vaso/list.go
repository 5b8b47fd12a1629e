package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List every vessel in the dataset",
	GroupID: "vessels",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := vesselClient.ListVessels(context.Background(), "")
		if err != nil {
			return fmt.Errorf("listing vessels: %w", err)
		}

		if jsonOutput {
			printJSON(resp.Vessels)
		} else {
			printVesselListTable(resp.Vessels, resp.Total)
		}
		return nil
	},
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:     "regions",
	Short:   "Show the anatomical region tree",
	GroupID: "views",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		regions, err := vesselClient.GetRegions(context.Background())
		if err != nil {
			return fmt.Errorf("getting regions: %w", err)
		}

		if jsonOutput {
			printJSON(regions)
		} else {
			printRegionTree(regions)
		}
		return nil
	},
}

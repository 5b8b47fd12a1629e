package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Short:   "Search vessels by name or alias",
	GroupID: "vessels",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		resp, err := vesselClient.ListVessels(context.Background(), query)
		if err != nil {
			return fmt.Errorf("searching vessels: %w", err)
		}

		if jsonOutput {
			printJSON(resp.Vessels)
		} else {
			printVesselListTable(resp.Vessels, resp.Total)
		}
		return nil
	},
}

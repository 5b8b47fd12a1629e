package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Short:   "Show details of a vessel",
	GroupID: "vessels",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid vessel id %q", args[0])
		}

		detail, err := vesselClient.GetVessel(context.Background(), id)
		if err != nil {
			return fmt.Errorf("getting vessel %d: %w", id, err)
		}

		if jsonOutput {
			printJSON(detail)
		} else {
			printVesselDetail(detail)
		}
		return nil
	},
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/eshan-bhimani/vaso-map/internal/client"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:     "path <source-id> <target-id>",
	Short:   "Find the shortest flow path between two vessels",
	GroupID: "vessels",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid source id %q", args[0])
		}
		target, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid target id %q", args[1])
		}
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		path, err := vesselClient.FindPath(context.Background(), &client.FindPathRequest{
			SourceID: source,
			TargetID: target,
			MaxDepth: maxDepth,
		})
		if err != nil {
			var apiErr *client.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound && apiErr.Kind == "no_path" {
				return fmt.Errorf("no downstream path from %d to %d", source, target)
			}
			return fmt.Errorf("finding path: %w", err)
		}

		if jsonOutput {
			printJSON(path)
		} else {
			printPath(path)
		}
		return nil
	},
}

func init() {
	pathCmd.Flags().Int("max-depth", 0, "maximum path depth (0 uses the server default)")
}

package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zanzibarexplore/tour-desk/internal/client"
)

func newVehiclesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vehicles",
		Short: "List the airport transfer fleet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVehicles()
		},
	}
}

func runVehicles() error {
	c := newAPIClient()

	vehicles, err := c.ListVehicles()
	if err != nil {
		slog.Warn("transfer fleet unavailable, showing empty list",
			"error", client.Normalize(err).Message)
		vehicles = nil
	}

	if isJSON() {
		return printJSON(vehicles)
	}

	return printVehicleTable(vehicles)
}

package cli

import (
	"github.com/spf13/cobra"
)

func newTourCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tour <id>",
		Short: "Show one tour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(args[0])
		},
	}
}

func runTour(id string) error {
	c := newAPIClient()

	t, err := c.GetTour(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(t)
	}

	printTourDetail(t)
	return nil
}

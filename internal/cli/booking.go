package cli

import (
	"github.com/spf13/cobra"
)

func newBookingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "booking <id>",
		Short: "Check the status of a tour booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBooking(args[0])
		},
	}
}

func runBooking(id string) error {
	c := newAPIClient()

	b, err := c.GetTourBooking(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(b)
	}

	printTourBooking(b)
	return nil
}

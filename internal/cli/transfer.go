package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zanzibarexplore/tour-desk/internal/form"
	"github.com/zanzibarexplore/tour-desk/internal/leads"
)

func newTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Airport transfer bookings",
	}

	cmd.AddCommand(
		newTransferBookCmd(),
		newTransferShowCmd(),
	)

	return cmd
}

func newTransferBookCmd() *cobra.Command {
	var (
		name        string
		email       string
		phone       string
		flight      string
		date        string
		arrival     string
		passengers  int
		vehicleType string
		destination string
		requests    string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Send an airport transfer booking request",
		Long: `Send an airport transfer booking request.

The vehicle type must match one of the types listed by "zet vehicles".

Example:
  zet transfer book --name "Amina Juma" --email amina@example.com \
    --phone "+255 700 000 000" --flight KQ486 --date 2026-09-12 \
    --time 14:30 --passengers 3 --vehicle SUV --destination "Stone Town"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransferBook(name, email, phone, flight, date, arrival,
				passengers, vehicleType, destination, requests)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&flight, "flight", "", "flight number")
	cmd.Flags().StringVar(&date, "date", "", "arrival date (YYYY-MM-DD, today or later)")
	cmd.Flags().StringVar(&arrival, "time", "", "arrival time (HH:MM)")
	cmd.Flags().IntVar(&passengers, "passengers", 1, "number of passengers")
	cmd.Flags().StringVar(&vehicleType, "vehicle", "", "vehicle type from the fleet list")
	cmd.Flags().StringVar(&destination, "destination", "", "destination (hotel or area)")
	cmd.Flags().StringVar(&requests, "requests", "", "special requests (optional)")

	return cmd
}

func runTransferBook(name, email, phone, flight, date, arrival string,
	passengers int, vehicleType, destination, requests string) error {

	c := newAPIClient()

	frm := form.NewTransferBooking(c)
	frm.Name = name
	frm.Email = email
	frm.Phone = phone
	frm.FlightNumber = flight
	frm.ArrivalDate = date
	frm.ArrivalTime = arrival
	frm.Passengers = passengers
	frm.VehicleType = vehicleType
	frm.Destination = destination
	frm.SpecialRequests = requests

	flow := form.NewFlow(notifier{})
	if err := flow.Submit(frm); err != nil {
		return err
	}

	if frm.Confirmation != nil {
		recordLead(leads.KindTransfer, frm.Confirmation.ID,
			fmt.Sprintf("%s to %s on %s (%d passenger(s))", vehicleType, destination, date, passengers))
		fmt.Printf("Transfer reference: %s\n", frm.Confirmation.ID)
	}
	return nil
}

func newTransferShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Check the status of a transfer booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransferShow(args[0])
		},
	}
}

func runTransferShow(id string) error {
	c := newAPIClient()

	b, err := c.GetTransferBooking(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(b)
	}

	printTransferBooking(b)
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zanzibarexplore/tour-desk/internal/form"
	"github.com/zanzibarexplore/tour-desk/internal/leads"
)

func newBookCmd() *cobra.Command {
	var (
		name    string
		email   string
		phone   string
		date    string
		guests  int
		message string
	)

	cmd := &cobra.Command{
		Use:   "book <tour-id>",
		Short: "Send a tour booking request",
		Long: `Send a booking request for a tour.

The tour is fetched first so the request always references a real tour.

Example:
  zet book 68a1f2 --name "Amina Juma" --email amina@example.com \
    --phone "+255 700 000 000" --date 2026-09-12 --guests 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBook(args[0], name, email, phone, date, guests, message)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&date, "date", "", "preferred date (YYYY-MM-DD, today or later)")
	cmd.Flags().IntVar(&guests, "guests", 1, "number of guests")
	cmd.Flags().StringVar(&message, "message", "", "special requests (optional)")

	return cmd
}

func runBook(tourID, name, email, phone, date string, guests int, message string) error {
	c := newAPIClient()

	t, err := c.GetTour(tourID)
	if err != nil {
		return err
	}

	frm := form.NewTourBooking(c, t)
	frm.Name = name
	frm.Email = email
	frm.Phone = phone
	frm.Date = date
	frm.Guests = guests
	frm.Message = message

	flow := form.NewFlow(notifier{})
	if err := flow.Submit(frm); err != nil {
		return err
	}

	if frm.Confirmation != nil {
		recordLead(leads.KindTour, frm.Confirmation.ID,
			fmt.Sprintf("%s on %s for %d guest(s)", t.Title, date, guests))
		fmt.Printf("Booking reference: %s\n", frm.Confirmation.ID)
	}
	return nil
}

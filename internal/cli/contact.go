package cli

import (
	"github.com/spf13/cobra"

	"github.com/zanzibarexplore/tour-desk/internal/form"
	"github.com/zanzibarexplore/tour-desk/internal/leads"
)

func newContactCmd() *cobra.Command {
	var (
		name    string
		email   string
		phone   string
		subject string
		message string
	)

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a contact message",
		Long: `Send a contact message to the tour operator.

Example:
  zet contact --name "Amina Juma" --email amina@example.com \
    --subject "Group discount" --message "Do you offer rates for 12 people?"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContact(name, email, phone, subject, message)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number (optional)")
	cmd.Flags().StringVar(&subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&message, "message", "", "message body")

	return cmd
}

func runContact(name, email, phone, subject, message string) error {
	c := newAPIClient()

	frm := form.NewContactMessage(c)
	frm.Name = name
	frm.Email = email
	frm.Phone = phone
	frm.Subject = subject
	frm.Message = message

	flow := form.NewFlow(notifier{})
	if err := flow.Submit(frm); err != nil {
		return err
	}

	if frm.Confirmation != nil {
		recordLead(leads.KindContact, frm.Confirmation.ID, subject)
	}
	return nil
}

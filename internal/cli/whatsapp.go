package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

// defaultWhatsAppMessage is the prefilled text for the WhatsApp deep link.
const defaultWhatsAppMessage = "Hi! I'm interested in your tours. Could you help me plan my Zanzibar adventure?"

func newWhatsAppCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whatsapp [message]",
		Short: "Print a WhatsApp chat link to the tour operator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := defaultWhatsAppMessage
			if len(args) == 1 {
				msg = args[0]
			}
			fmt.Println(whatsAppLink(getWhatsApp(), msg))
			return nil
		},
	}
}

// whatsAppLink builds a wa.me deep link with the message URL-encoded.
func whatsAppLink(number, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, encoded)
}

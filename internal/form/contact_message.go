package form

import (
	"github.com/zanzibarexplore/tour-desk/internal/client"
	"github.com/zanzibarexplore/tour-desk/internal/contact"
)

// ContactMessage is the contact page form. Phone is optional; every other
// field is required.
type ContactMessage struct {
	Client *client.Client

	Name    string
	Email   string
	Phone   string
	Subject string
	Message string

	// Confirmation holds the backend's response after a successful send.
	// It survives Reset so callers can record the lead.
	Confirmation *contact.Receipt
}

// NewContactMessage creates an empty contact form.
func NewContactMessage(c *client.Client) *ContactMessage {
	return &ContactMessage{Client: c}
}

func (f *ContactMessage) Validate() error {
	if err := required("name", f.Name); err != nil {
		return err
	}
	if err := validEmail(f.Email); err != nil {
		return err
	}
	if err := required("subject", f.Subject); err != nil {
		return err
	}
	return required("message", f.Message)
}

func (f *ContactMessage) Send() error {
	receipt, err := f.Client.CreateContact(contact.Message{
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Subject: f.Subject,
		Body:    f.Message,
	})
	if err != nil {
		return err
	}
	f.Confirmation = receipt
	return nil
}

func (f *ContactMessage) Reset() {
	f.Name = ""
	f.Email = ""
	f.Phone = ""
	f.Subject = ""
	f.Message = ""
}

func (f *ContactMessage) SuccessNotice() (string, string) {
	return "Message Sent!", "Thank you for contacting us. We'll get back to you within 24 hours."
}

func (f *ContactMessage) FailureTitle() string {
	return "Message Failed"
}

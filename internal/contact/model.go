// Package contact provides the contact inquiry wire shapes.
package contact

import "time"

// Message is the wire shape for POST /api/contact/. Phone is the only
// optional field.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

// Status tracks a contact inquiry through follow-up.
type Status string

const (
	StatusNew     Status = "new"
	StatusReplied Status = "replied"
	StatusClosed  Status = "closed"
)

// Receipt is the backend's confirmation of a stored contact inquiry.
type Receipt struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

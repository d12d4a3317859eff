// Package leads stores the local history of submitted leads: bookings and
// contact messages the user has sent from this machine.
package leads

import "time"

// Kind identifies which form produced a lead.
type Kind string

const (
	KindTour     Kind = "tour"
	KindTransfer Kind = "transfer"
	KindContact  Kind = "contact"
)

// ValidKinds is the set of allowed lead kinds.
var ValidKinds = []Kind{KindTour, KindTransfer, KindContact}

// IsValid checks if a lead kind is recognized.
func (k Kind) IsValid() bool {
	for _, v := range ValidKinds {
		if k == v {
			return true
		}
	}
	return false
}

// Label returns a human-readable label for the lead kind.
func (k Kind) Label() string {
	switch k {
	case KindTour:
		return "Tour booking"
	case KindTransfer:
		return "Transfer booking"
	case KindContact:
		return "Contact message"
	default:
		return string(k)
	}
}

// Lead is one recorded submission. RemoteID is the backend's identifier
// for the created record, usable with the booking status commands.
type Lead struct {
	ID        int64     `json:"id"`
	Kind      Kind      `json:"kind"`
	RemoteID  string    `json:"remote_id"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

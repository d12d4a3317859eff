package form

import (
	"github.com/zanzibarexplore/tour-desk/internal/client"
	"github.com/zanzibarexplore/tour-desk/internal/transfer"
)

// TransferBooking is the airport transfer booking form.
type TransferBooking struct {
	Client *client.Client

	Name            string
	Email           string
	Phone           string
	FlightNumber    string
	ArrivalDate     string // YYYY-MM-DD
	ArrivalTime     string // HH:MM
	Passengers      int
	VehicleType     string
	Destination     string
	SpecialRequests string

	// Confirmation holds the backend's response after a successful send.
	// It survives Reset so callers can record the lead.
	Confirmation *transfer.Booking
}

// NewTransferBooking creates a transfer form with the initial field
// defaults (one passenger, everything else empty).
func NewTransferBooking(c *client.Client) *TransferBooking {
	return &TransferBooking{Client: c, Passengers: 1}
}

func (f *TransferBooking) Validate() error {
	if err := required("name", f.Name); err != nil {
		return err
	}
	if err := validEmail(f.Email); err != nil {
		return err
	}
	if err := required("phone", f.Phone); err != nil {
		return err
	}
	if err := required("flight number", f.FlightNumber); err != nil {
		return err
	}
	if err := futureDate("arrival date", f.ArrivalDate); err != nil {
		return err
	}
	if err := required("arrival time", f.ArrivalTime); err != nil {
		return err
	}
	if err := atLeastOne("passengers", f.Passengers); err != nil {
		return err
	}
	if err := required("vehicle type", f.VehicleType); err != nil {
		return err
	}
	return required("destination", f.Destination)
}

func (f *TransferBooking) Send() error {
	booking, err := f.Client.CreateTransferBooking(transfer.BookingRequest{
		CustomerName:    f.Name,
		Email:           f.Email,
		Phone:           f.Phone,
		FlightNumber:    f.FlightNumber,
		ArrivalDate:     f.ArrivalDate,
		ArrivalTime:     f.ArrivalTime,
		Passengers:      f.Passengers,
		VehicleType:     f.VehicleType,
		Destination:     f.Destination,
		SpecialRequests: f.SpecialRequests,
	})
	if err != nil {
		return err
	}
	f.Confirmation = booking
	return nil
}

func (f *TransferBooking) Reset() {
	f.Name = ""
	f.Email = ""
	f.Phone = ""
	f.FlightNumber = ""
	f.ArrivalDate = ""
	f.ArrivalTime = ""
	f.Passengers = 1
	f.VehicleType = ""
	f.Destination = ""
	f.SpecialRequests = ""
}

func (f *TransferBooking) SuccessNotice() (string, string) {
	return "Transfer Booking Sent!", "We'll confirm your airport transfer within 2 hours."
}

func (f *TransferBooking) FailureTitle() string {
	return "Booking Failed"
}

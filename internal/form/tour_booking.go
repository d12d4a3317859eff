package form

import (
	"errors"

	"github.com/zanzibarexplore/tour-desk/internal/client"
	"github.com/zanzibarexplore/tour-desk/internal/tour"
)

// ErrNoTour aborts a tour booking locally when no tour is selected.
var ErrNoTour = errors.New("please select a tour first")

// TourBooking is the form behind the tour booking modal. Tour is the
// selected tour; a nil Tour means the modal has no selection and Submit
// fails locally without any network call.
type TourBooking struct {
	Client *client.Client
	Tour   *tour.Tour

	Name    string
	Email   string
	Phone   string
	Date    string // YYYY-MM-DD
	Guests  int
	Message string

	// Confirmation holds the backend's response after a successful send.
	// It survives Reset so callers can record the lead.
	Confirmation *tour.Booking
}

// NewTourBooking creates a booking form for t with the initial field
// defaults (one guest, everything else empty).
func NewTourBooking(c *client.Client, t *tour.Tour) *TourBooking {
	return &TourBooking{Client: c, Tour: t, Guests: 1}
}

func (f *TourBooking) Validate() error {
	if f.Tour == nil || f.Tour.ID == "" {
		return ErrNoTour
	}
	if err := required("name", f.Name); err != nil {
		return err
	}
	if err := validEmail(f.Email); err != nil {
		return err
	}
	if err := required("phone", f.Phone); err != nil {
		return err
	}
	if err := futureDate("booking date", f.Date); err != nil {
		return err
	}
	return atLeastOne("guests", f.Guests)
}

func (f *TourBooking) Send() error {
	booking, err := f.Client.CreateTourBooking(tour.BookingRequest{
		TourID:          f.Tour.ID,
		CustomerName:    f.Name,
		Email:           f.Email,
		Phone:           f.Phone,
		BookingDate:     f.Date,
		Guests:          f.Guests,
		SpecialRequests: f.Message,
	})
	if err != nil {
		return err
	}
	f.Confirmation = booking
	return nil
}

// Reset clears the fields back to their defaults and drops the tour
// selection, which closes the hosting modal: the form is unusable until a
// tour is selected again.
func (f *TourBooking) Reset() {
	f.Tour = nil
	f.Name = ""
	f.Email = ""
	f.Phone = ""
	f.Date = ""
	f.Guests = 1
	f.Message = ""
}

func (f *TourBooking) SuccessNotice() (string, string) {
	return "Booking Request Sent!", "We'll contact you within 24 hours to confirm your booking."
}

func (f *TourBooking) FailureTitle() string {
	return "Booking Failed"
}

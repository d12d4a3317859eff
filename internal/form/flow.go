// Package form implements the submit lifecycle shared by every lead form:
// tour bookings, airport transfer bookings, and contact messages.
package form

import (
	"errors"
	"sync"

	"github.com/zanzibarexplore/tour-desk/internal/client"
)

// Status is a Flow's lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
)

// Notifier displays submission outcomes to the user.
type Notifier interface {
	Success(title, detail string)
	Failure(title, detail string)
}

// Form is one lead-generation form.
type Form interface {
	// Validate checks required fields locally. A validation failure must
	// prevent any network traffic.
	Validate() error
	// Send submits the form payload to the backend.
	Send() error
	// Reset returns every field to its initial value.
	Reset()
	// SuccessNotice returns the form's fixed confirmation notice.
	SuccessNotice() (title, detail string)
	// FailureTitle returns the heading for failure notices.
	FailureTitle() string
}

// ErrInFlight is returned when a submit is attempted while an earlier
// submission on the same flow has not resolved yet.
var ErrInFlight = errors.New("submission already in progress")

// Flow drives a form through idle -> submitting -> success or failure and
// back to idle. At most one submission is in flight at a time; a second
// submit while submitting is rejected before any network call.
type Flow struct {
	mu     sync.Mutex
	status Status
	notify Notifier
}

// NewFlow creates a flow reporting outcomes to n.
func NewFlow(n Notifier) *Flow {
	return &Flow{notify: n}
}

// Status reports the current lifecycle state.
func (f *Flow) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit validates and sends frm. On success the form is reset and its
// confirmation notice shown; on failure the fields are preserved for
// retry and the normalized error message shown. Either way the flow ends
// idle again. A validation failure surfaces immediately with no state
// transition and no network call.
func (f *Flow) Submit(frm Form) error {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrInFlight
	}
	if err := frm.Validate(); err != nil {
		f.mu.Unlock()
		f.notify.Failure(frm.FailureTitle(), err.Error())
		return err
	}
	f.status = StatusSubmitting
	f.mu.Unlock()

	err := frm.Send()

	f.mu.Lock()
	f.status = StatusIdle
	f.mu.Unlock()

	if err != nil {
		apiErr := client.Normalize(err)
		f.notify.Failure(frm.FailureTitle(), apiErr.Message)
		return apiErr
	}

	title, detail := frm.SuccessNotice()
	f.notify.Success(title, detail)
	frm.Reset()
	return nil
}

package form

import (
	"fmt"
	"net/mail"
	"time"
)

// required rejects an empty value for a named field.
func required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// validEmail checks the address has a plausible mailbox shape.
func validEmail(value string) error {
	if value == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return fmt.Errorf("invalid email address: %s", value)
	}
	return nil
}

// futureDate checks a YYYY-MM-DD date that must be today or later.
func futureDate(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return fmt.Errorf("invalid %s (use YYYY-MM-DD): %s", field, value)
	}
	y, m, day := time.Now().Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return fmt.Errorf("%s must be today or later", field)
	}
	return nil
}

// atLeastOne checks an integer count field with a lower bound of 1.
func atLeastOne(field string, value int) error {
	if value < 1 {
		return fmt.Errorf("%s must be at least 1", field)
	}
	return nil
}

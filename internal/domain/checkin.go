package domain

import "fmt"

// Checkin is a transient user submission. It is never persisted directly;
// the service wraps the reflected result into a Response payload.
type Checkin struct {
	Type CheckinType
	Text string
}

// Validate checks the submission before reflection runs.
func (c Checkin) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("check-in type must be %q or %q, got %q", CheckinMorning, CheckinEvening, c.Type)
	}
	if c.Text == "" {
		return fmt.Errorf("check-in text is required")
	}
	return nil
}

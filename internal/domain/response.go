package domain

import (
	"fmt"
	"time"
)

// Response is a kind-tagged record owned by a user. Onboarding submissions
// and check-in results share this shape; the payload carries the
// kind-specific fields as a schema-versioned JSON document.
type Response struct {
	ID            string
	OwnerID       string
	Kind          ResponseKind
	SchemaVersion string
	Payload       map[string]any
	CreatedAt     time.Time
}

// Validate checks the invariants required before persisting a response.
func (r *Response) Validate() error {
	if r.OwnerID == "" {
		return fmt.Errorf("owner ID is required")
	}
	if !ValidResponseKinds[string(r.Kind)] {
		return fmt.Errorf("unknown response kind %q", r.Kind)
	}
	if r.Payload == nil {
		return fmt.Errorf("payload is required")
	}
	return nil
}

// Text returns the "text" payload field, or "" when absent or not a string.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	s, _ := r.Payload["text"].(string)
	return s
}

// DisplayID returns a short identifier for terminal output.
func (r *Response) DisplayID() string {
	if len(r.ID) >= 8 {
		return r.ID[:8]
	}
	return r.ID
}

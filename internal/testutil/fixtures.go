package testutil

import (
	"time"

	"github.com/Prokope45/Praestara/internal/domain"
	"github.com/google/uuid"
)

// ResponseOption mutates a fixture response before it is returned.
type ResponseOption func(*domain.Response)

// WithCreatedAt pins the response creation time.
func WithCreatedAt(t time.Time) ResponseOption {
	return func(r *domain.Response) {
		r.CreatedAt = t
	}
}

// WithOwner overrides the fixture owner.
func WithOwner(ownerID string) ResponseOption {
	return func(r *domain.Response) {
		r.OwnerID = ownerID
	}
}

// NewResponse builds a persistable response fixture of the given kind.
func NewResponse(kind domain.ResponseKind, payload map[string]any, opts ...ResponseOption) *domain.Response {
	r := &domain.Response{
		ID:            uuid.NewString(),
		OwnerID:       "owner-test",
		Kind:          kind,
		SchemaVersion: "v1",
		Payload:       payload,
		CreatedAt:     time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnboardingPayload builds a minimal onboarding payload declaring the given
// domains. Each entry is {name, importance}.
func OnboardingPayload(domains ...map[string]any) map[string]any {
	list := make([]any, 0, len(domains))
	for _, d := range domains {
		list = append(list, d)
	}
	return map[string]any{
		"sectionB": map[string]any{
			"domains": list,
		},
	}
}

// DomainEntry is a convenience constructor for onboarding domain entries.
func DomainEntry(name string, importance float64) map[string]any {
	return map[string]any{"name": name, "importance": importance}
}

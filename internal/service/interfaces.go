package service

import (
	"context"

	"github.com/Prokope45/Praestara/internal/domain"
)

// CheckinService runs the full check-in flow: load context, reflect,
// persist the result.
type CheckinService interface {
	// Create processes one check-in for the owner and returns the stored
	// record. Generation-service problems never surface as errors; only
	// validation and storage failures do.
	Create(ctx context.Context, ownerID string, checkin domain.Checkin) (*CheckinResult, error)
	// History lists the owner's stored check-ins of the given type,
	// newest first.
	History(ctx context.Context, ownerID string, checkinType domain.CheckinType, limit int) ([]*domain.Response, error)
}

// CheckinResult pairs the persisted record with the reflection outcome.
type CheckinResult struct {
	Record         *domain.Response
	Reply          string
	Source         string
	AlignmentScore *int
}

// OnboardingService records onboarding submissions, which feed the check-in
// engine's domain extraction.
type OnboardingService interface {
	Record(ctx context.Context, ownerID string, payload map[string]any) (*domain.Response, error)
	Latest(ctx context.Context, ownerID string) (*domain.Response, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Prokope45/Praestara/internal/domain"
	"github.com/Prokope45/Praestara/internal/repository"
	"github.com/google/uuid"
)

type onboardingService struct {
	responses repository.ResponseRepo
}

// NewOnboardingService creates an OnboardingService backed by the given
// response store.
func NewOnboardingService(responses repository.ResponseRepo) OnboardingService {
	return &onboardingService{responses: responses}
}

func (s *onboardingService) Record(ctx context.Context, ownerID string, payload map[string]any) (*domain.Response, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	if payload == nil {
		return nil, fmt.Errorf("onboarding payload is required")
	}

	record := &domain.Response{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Kind:          domain.KindOnboarding,
		SchemaVersion: "v1",
		Payload:       payload,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.responses.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("persisting onboarding response: %w", err)
	}
	return record, nil
}

func (s *onboardingService) Latest(ctx context.Context, ownerID string) (*domain.Response, error) {
	return s.responses.LatestByKind(ctx, ownerID, domain.KindOnboarding)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Prokope45/Praestara/internal/domain"
	"github.com/Prokope45/Praestara/internal/reflection"
	"github.com/Prokope45/Praestara/internal/repository"
	"github.com/google/uuid"
)

type checkinService struct {
	responses repository.ResponseRepo
	engine    *reflection.Engine
}

// NewCheckinService creates a CheckinService backed by the given response
// store and reflection engine.
func NewCheckinService(responses repository.ResponseRepo, engine *reflection.Engine) CheckinService {
	return &checkinService{responses: responses, engine: engine}
}

func (s *checkinService) Create(ctx context.Context, ownerID string, checkin domain.Checkin) (*CheckinResult, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	if err := checkin.Validate(); err != nil {
		return nil, err
	}

	onboarding, err := s.loadLatest(ctx, ownerID, domain.KindOnboarding)
	if err != nil {
		return nil, err
	}

	var lastMorning *domain.Response
	if checkin.Type == domain.CheckinEvening {
		lastMorning, err = s.loadLatest(ctx, ownerID, domain.KindMorningCheckin)
		if err != nil {
			return nil, err
		}
	}

	var onboardingPayload map[string]any
	if onboarding != nil {
		onboardingPayload = onboarding.Payload
	}

	result := s.engine.Reflect(ctx, reflection.Input{
		Type:            checkin.Type,
		Text:            checkin.Text,
		Onboarding:      onboardingPayload,
		LastMorningText: lastMorning.Text(),
	})

	now := time.Now().UTC()
	record := &domain.Response{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Kind:          checkin.Type.ResponseKind(),
		SchemaVersion: "v1",
		Payload:       checkinPayload(checkin, result, onboarding, lastMorning, now),
		CreatedAt:     now,
	}
	if err := s.responses.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("persisting check-in: %w", err)
	}

	return &CheckinResult{
		Record:         record,
		Reply:          result.Reply,
		Source:         result.Source,
		AlignmentScore: result.AlignmentScore,
	}, nil
}

func (s *checkinService) History(ctx context.Context, ownerID string, checkinType domain.CheckinType, limit int) ([]*domain.Response, error) {
	if !checkinType.IsValid() {
		return nil, fmt.Errorf("unknown check-in type %q", checkinType)
	}
	return s.responses.ListByOwner(ctx, ownerID, checkinType.ResponseKind(), limit)
}

// loadLatest fetches the most recent record of a kind; a missing record is
// a valid state, not an error.
func (s *checkinService) loadLatest(ctx context.Context, ownerID string, kind domain.ResponseKind) (*domain.Response, error) {
	resp, err := s.responses.LatestByKind(ctx, ownerID, kind)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading latest %s: %w", kind, err)
	}
	return resp, nil
}

// checkinPayload builds the schema-v1 payload persisted for a check-in,
// including references to the context records the reflection used.
func checkinPayload(checkin domain.Checkin, result reflection.Result, onboarding, lastMorning *domain.Response, createdAt time.Time) map[string]any {
	payload := map[string]any{
		"type":            string(checkin.Type),
		"text":            checkin.Text,
		"reply":           result.Reply,
		"reply_source":    result.Source,
		"created_at":      createdAt.Format(time.RFC3339),
		"onboarding_id":   nil,
		"morning_id":      nil,
		"alignment_score": nil,
	}
	if onboarding != nil {
		payload["onboarding_id"] = onboarding.ID
	}
	if lastMorning != nil {
		payload["morning_id"] = lastMorning.ID
	}
	if result.AlignmentScore != nil {
		payload["alignment_score"] = *result.AlignmentScore
	}
	return payload
}

// Package api provides the HTTP surface for check-ins and onboarding.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Prokope45/Praestara/internal/domain"
	"github.com/Prokope45/Praestara/internal/repository"
	"github.com/Prokope45/Praestara/internal/service"
)

// ownerHeader names the request header carrying the owner identity.
// Authentication is handled upstream; an absent header maps to the
// single-user default.
const (
	ownerHeader  = "X-Praestara-Owner"
	defaultOwner = "local"
)

// Handler serves check-in and onboarding requests.
type Handler struct {
	checkins   service.CheckinService
	onboarding service.OnboardingService
}

// NewHandler creates a Handler with its service dependencies.
func NewHandler(checkins service.CheckinService, onboarding service.OnboardingService) *Handler {
	return &Handler{checkins: checkins, onboarding: onboarding}
}

// checkinRequest is the JSON body for POST /api/checkins.
type checkinRequest struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// checkinResponse is the JSON body returned for a processed check-in.
type checkinResponse struct {
	CheckinID      string `json:"checkin_id"`
	Reply          string `json:"reply"`
	ReplySource    string `json:"reply_source"`
	AlignmentScore *int   `json:"alignment_score,omitempty"`
}

// CreateCheckin handles POST /api/checkins.
func (h *Handler) CreateCheckin(w http.ResponseWriter, r *http.Request) {
	var req checkinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	checkin := domain.Checkin{Type: domain.CheckinType(req.Type), Text: req.Text}
	if err := checkin.Validate(); err != nil {
		Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := h.checkins.Create(r.Context(), ownerFrom(r), checkin)
	if err != nil {
		slog.Error("check-in failed", "error", err)
		Error(w, http.StatusInternalServerError, "failed to process check-in")
		return
	}

	JSON(w, http.StatusCreated, checkinResponse{
		CheckinID:      result.Record.ID,
		Reply:          result.Reply,
		ReplySource:    result.Source,
		AlignmentScore: result.AlignmentScore,
	})
}

// ListCheckins handles GET /api/checkins?type=morning|evening.
func (h *Handler) ListCheckins(w http.ResponseWriter, r *http.Request) {
	checkinType := domain.CheckinType(r.URL.Query().Get("type"))
	if checkinType == "" {
		checkinType = domain.CheckinEvening
	}

	history, err := h.checkins.History(r.Context(), ownerFrom(r), checkinType, 50)
	if err != nil {
		if !checkinType.IsValid() {
			Error(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("listing check-ins failed", "error", err)
		Error(w, http.StatusInternalServerError, "failed to list check-ins")
		return
	}

	items := make([]map[string]any, 0, len(history))
	for _, rec := range history {
		items = append(items, map[string]any{
			"id":         rec.ID,
			"kind":       rec.Kind,
			"payload":    rec.Payload,
			"created_at": rec.CreatedAt,
		})
	}
	JSON(w, http.StatusOK, map[string]any{"data": items, "count": len(items)})
}

// onboardingRequest is the JSON body for POST /api/onboarding.
type onboardingRequest struct {
	Payload map[string]any `json:"payload"`
}

// RecordOnboarding handles POST /api/onboarding.
func (h *Handler) RecordOnboarding(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Payload == nil {
		Error(w, http.StatusUnprocessableEntity, "payload is required")
		return
	}

	record, err := h.onboarding.Record(r.Context(), ownerFrom(r), req.Payload)
	if err != nil {
		slog.Error("recording onboarding failed", "error", err)
		Error(w, http.StatusInternalServerError, "failed to record onboarding")
		return
	}

	JSON(w, http.StatusCreated, map[string]any{"id": record.ID})
}

// GetOnboarding handles GET /api/onboarding.
func (h *Handler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	record, err := h.onboarding.Latest(r.Context(), ownerFrom(r))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			Error(w, http.StatusNotFound, "no onboarding recorded")
			return
		}
		slog.Error("loading onboarding failed", "error", err)
		Error(w, http.StatusInternalServerError, "failed to load onboarding")
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"id":         record.ID,
		"payload":    record.Payload,
		"created_at": record.CreatedAt,
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

func ownerFrom(r *http.Request) string {
	if owner := r.Header.Get(ownerHeader); owner != "" {
		return owner
	}
	return defaultOwner
}

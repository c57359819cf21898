package formatter

import (
	"testing"
	"time"

	"github.com/Prokope45/Praestara/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatHistory_Empty(t *testing.T) {
	out := FormatHistory(domain.CheckinEvening, nil)

	assert.Contains(t, out, "EVENING CHECK-INS")
	assert.Contains(t, out, "No check-ins yet.")
}

func TestFormatHistory_RendersTextReplyAndScore(t *testing.T) {
	records := []*domain.Response{
		{
			ID:   "39f351b6-2b6e-4f0e-a1d2-b8e3a40b1f07",
			Kind: domain.KindEveningCheckin,
			Payload: map[string]any{
				"text":            "Family dinner and a long walk.",
				"reply":           "Today leans toward what matters.",
				"alignment_score": float64(53),
			},
			CreatedAt: time.Now().Add(-2 * time.Hour),
		},
	}

	out := FormatHistory(domain.CheckinEvening, records)

	assert.Contains(t, out, "39f351b6")
	assert.Contains(t, out, "Family dinner and a long walk.")
	assert.Contains(t, out, "Today leans toward what matters.")
	assert.Contains(t, out, "53/100")
	assert.Contains(t, out, "2h ago")
}

func TestFormatHistory_MorningWithoutScore(t *testing.T) {
	records := []*domain.Response{
		{
			ID:   "abc12345-def0-1234-5678-90abcdef1234",
			Kind: domain.KindMorningCheckin,
			Payload: map[string]any{
				"text":  "Plan: deep work block.",
				"reply": "Thanks for sharing.",
			},
			CreatedAt: time.Now(),
		},
	}

	out := FormatHistory(domain.CheckinMorning, records)

	assert.Contains(t, out, "MORNING CHECK-INS")
	assert.Contains(t, out, "Plan: deep work block.")
	assert.NotContains(t, out, "/100")
}

func TestPayloadScore_AcceptsJSONNumbers(t *testing.T) {
	score := payloadScore(map[string]any{"alignment_score": float64(88)})
	if assert.NotNil(t, score) {
		assert.Equal(t, 88, *score)
	}

	assert.Nil(t, payloadScore(map[string]any{}))
	assert.Nil(t, payloadScore(map[string]any{"alignment_score": "high"}))
}

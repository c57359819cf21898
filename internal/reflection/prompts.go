package reflection

import (
	"encoding/json"
	"strings"

	"github.com/Prokope45/Praestara/internal/domain"
)

// Persona preamble sent ahead of every check-in prompt. Kept as named
// constants so the voice can be localized or A/B-tested without touching
// composition logic.
const (
	personaIdentity = "You are Praestara: non-moralizing, values-anchored, non-diagnostic."
	personaGoal     = "Your goal is to connect actions to values and self-concept, without accountability or judgment."
	personaTone     = "If there are discrepancies between stated values and today's plan/summary, gently reflect them without questions."
	personaClose    = "Close with a short glimpse of how today's direction reinforces who the person is becoming."
)

// Section labels and reply instructions.
const (
	labelOnboarding  = "Onboarding values/self-concept data (JSON):"
	labelMorning     = "Morning check-in (user plans):"
	labelMorningPlan = "Morning plan (earlier today):"
	labelEvening     = "Evening check-in (what they did today):"

	instructMorning = "Respond with: (1) a brief reflection, (2) a closing glimpse of how this direction supports the identity trajectory. No questions."
	instructEvening = "Respond with: (1) a brief reflection comparing plan vs day, (2) a closing glimpse of how this supports identity trajectory. No questions."
)

// BuildPrompt assembles the full instruction string sent to the remote
// generation endpoint: persona preamble, optional onboarding dump, then
// type-specific context. Paragraphs are joined with blank lines. No
// further prompt engineering happens downstream.
func BuildPrompt(checkinType domain.CheckinType, text string, onboarding map[string]any, lastMorningText string) string {
	parts := []string{
		personaIdentity,
		personaGoal,
		personaTone,
		personaClose,
	}

	if len(onboarding) > 0 {
		parts = append(parts, labelOnboarding, serializePayload(onboarding))
	}

	if checkinType == domain.CheckinMorning {
		parts = append(parts, labelMorning, text, instructMorning)
	} else {
		if lastMorningText != "" {
			parts = append(parts, labelMorningPlan, lastMorningText)
		}
		parts = append(parts, labelEvening, text, instructEvening)
	}

	return strings.Join(parts, "\n\n")
}

// serializePayload renders the onboarding payload for prompt inclusion.
// Marshal failures degrade to an empty object rather than aborting the
// check-in; the payload came from a JSON column so they should not occur.
func serializePayload(payload map[string]any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return "{}"
	}
	return string(data)
}

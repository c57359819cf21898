package reflection

import (
	"strings"

	"github.com/Prokope45/Praestara/internal/domain"
)

// headlineMaxLen bounds the headline sentence used in fallback replies.
// Longer headlines are cut to 117 characters plus an ellipsis marker.
const headlineMaxLen = 120

// Fallback reply templates. Deterministic by design: identical inputs must
// produce byte-identical replies, so no randomness or clock reads here.
const (
	fallbackMorningOpen    = "Thanks for sharing. I hear your plan: "
	fallbackMorningDefault = "today matters to you."
	fallbackMorningMissing = "; that's a signal worth holding gently."
	fallbackMorningClose   = "This kind of day reinforces the person who protects what matters and moves with intention."

	fallbackEveningPlanned = "This morning you planned: "
	fallbackEveningShared  = "This evening you shared: "
	fallbackEveningDefault = "today had its own shape."
	fallbackEveningMissing = "; the shift is informative, not a failure."
	fallbackEveningClose   = "These reflections accumulate into a steadier identity trajectory over time."

	fallbackLeansAway  = "Today leans away from "
	fallbackLeanedAway = "Today leaned away from "
)

// Headline extracts the sentence used to echo a check-in back to the user:
// the text up to its first period, trimmed, truncated to headlineMaxLen.
func Headline(text string) string {
	trimmed := strings.TrimSpace(text)
	if i := strings.Index(trimmed, "."); i >= 0 {
		trimmed = trimmed[:i]
	}
	trimmed = strings.TrimSpace(trimmed)

	runes := []rune(trimmed)
	if len(runes) > headlineMaxLen {
		return string(runes[:headlineMaxLen-3]) + "..."
	}
	return trimmed
}

// FallbackReply builds the deterministic templated reply used whenever
// remote generation is unavailable or fails. It leans on the same
// missing-domain signal as scoring, naming only the first missing domain.
func FallbackReply(checkinType domain.CheckinType, text string, onboarding map[string]any, lastMorningText string) string {
	domains := ExtractDomains(onboarding)
	missing := MissingDomains(text, domains, DefaultImportanceThreshold)
	headline := Headline(text)

	if checkinType == domain.CheckinMorning {
		lines := []string{
			fallbackMorningOpen + orDefault(headline, fallbackMorningDefault),
		}
		if len(missing) > 0 {
			lines = append(lines, fallbackLeansAway+missing[0]+fallbackMorningMissing)
		}
		lines = append(lines, fallbackMorningClose)
		return strings.Join(lines, " ")
	}

	var lines []string
	if lastMorningText != "" {
		lines = append(lines, fallbackEveningPlanned+Headline(lastMorningText)+".")
	}
	lines = append(lines, fallbackEveningShared+orDefault(headline, fallbackEveningDefault)+".")
	if len(missing) > 0 {
		lines = append(lines, fallbackLeanedAway+missing[0]+fallbackEveningMissing)
	}
	lines = append(lines, fallbackEveningClose)
	return strings.Join(lines, " ")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

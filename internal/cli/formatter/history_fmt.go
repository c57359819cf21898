package formatter

import (
	"fmt"
	"strings"

	"github.com/Prokope45/Praestara/internal/domain"
)

// FormatHistory renders recent check-ins newest first, one block per record.
func FormatHistory(checkinType domain.CheckinType, records []*domain.Response) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s check-ins", checkinType)))
	b.WriteString("\n\n")

	if len(records) == 0 {
		b.WriteString(Dim("No check-ins yet.") + "\n")
		return b.String()
	}

	for _, rec := range records {
		header := []string{
			TruncID(rec.ID),
			StyleFg.Render(HumanTimestamp(rec.CreatedAt)),
		}
		if score := payloadScore(rec.Payload); score != nil {
			header = append(header, ScoreIndicator(score))
		}
		b.WriteString(strings.Join(header, Dim("  ·  ")))
		b.WriteString("\n")

		if text := rec.Text(); text != "" {
			b.WriteString("  " + Bold(WordWrap(text, 70)) + "\n")
		}
		if reply, ok := rec.Payload["reply"].(string); ok && reply != "" {
			b.WriteString("  " + Dim(WordWrap(reply, 70)) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// payloadScore extracts alignment_score from a stored payload. Scores arrive
// as float64 after the JSON round-trip.
func payloadScore(payload map[string]any) *int {
	switch v := payload["alignment_score"].(type) {
	case float64:
		s := int(v)
		return &s
	case int:
		return &v
	case *int:
		return v
	default:
		return nil
	}
}

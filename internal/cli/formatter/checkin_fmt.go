package formatter

import (
	"fmt"
	"strings"

	"github.com/Prokope45/Praestara/internal/domain"
	"github.com/Prokope45/Praestara/internal/service"
)

// FormatCheckinResult renders a processed check-in: the reflection reply in a
// box, followed by the record ID, reply source, and alignment score when one
// was computed.
func FormatCheckinResult(result *service.CheckinResult) string {
	var b strings.Builder

	b.WriteString(RenderBox("Reflection", WordWrap(result.Reply, 72)))
	b.WriteString("\n")

	meta := []string{
		Dim("ID: ") + TruncID(result.Record.ID),
		SourceBadge(result.Source),
	}
	if result.AlignmentScore != nil {
		meta = append(meta, Dim("Alignment: ")+ScoreIndicator(result.AlignmentScore))
	}
	b.WriteString("  " + strings.Join(meta, Dim("  ·  ")))
	b.WriteString("\n")

	return b.String()
}

// FormatOnboarding renders a confirmation line for a recorded onboarding
// snapshot.
func FormatOnboarding(rec *domain.Response, domainCount int) string {
	noun := "domains"
	if domainCount == 1 {
		noun = "domain"
	}
	return fmt.Sprintf("%s Recorded %d %s %s\n",
		StyleGreen.Render("✔"),
		domainCount,
		noun,
		Dim("("+rec.DisplayID()+")"),
	)
}

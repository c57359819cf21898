package reflection

// Alignment score tuning. The floor means every evaluated domain can be
// missing and the score still reads 45 — effort credit for checking in at
// all. Preserved as-is from the product tuning.
const (
	scoreFloor     = 45
	scorePerDomain = 8
	scoreCeiling   = 100
)

// AlignmentScore converts mentioned-vs-missing counts into a bounded
// 0-100 score. Returns nil when no domains are declared: an absent score,
// not a zero one. Only evening check-ins are scored; callers enforce that.
func AlignmentScore(domains []Domain, missing []string) *int {
	if len(domains) == 0 {
		return nil
	}
	mentioned := len(domains) - len(missing)
	if mentioned < 0 {
		mentioned = 0
	}
	score := scoreFloor + mentioned*scorePerDomain
	if score > scoreCeiling {
		score = scoreCeiling
	}
	return &score
}

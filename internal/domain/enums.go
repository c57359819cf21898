package domain

// CheckinType distinguishes morning plans from evening recaps.
type CheckinType string

const (
	CheckinMorning CheckinType = "morning"
	CheckinEvening CheckinType = "evening"
)

// IsValid reports whether t is a known check-in type.
func (t CheckinType) IsValid() bool {
	return t == CheckinMorning || t == CheckinEvening
}

// ResponseKind returns the response kind a check-in of this type is stored as.
func (t CheckinType) ResponseKind() ResponseKind {
	if t == CheckinMorning {
		return KindMorningCheckin
	}
	return KindEveningCheckin
}

// ResponseKind tags a stored response payload with its role in the system.
type ResponseKind string

const (
	KindOnboarding     ResponseKind = "onboarding"
	KindMorningCheckin ResponseKind = "morning_checkin"
	KindEveningCheckin ResponseKind = "evening_checkin"
)

// ValidResponseKinds is the canonical set of accepted response kind strings.
var ValidResponseKinds = map[string]bool{
	"onboarding": true, "morning_checkin": true, "evening_checkin": true,
}

package constants

const (
	// ACRatePerHour is the points applied per hour of A/C use.
	ACRatePerHour = -5.0

	// WeekDays is the length of the impact window, ending today.
	WeekDays = 7

	// Top contributor list lengths
	TopImpactCount         = 3
	HighlightPositiveCount = 2
	HighlightNegativeCount = 1

	// Score label thresholds (strictly greater than)
	GreatScoreThreshold = 50
	OkayScoreThreshold  = 25

	// RingMax caps the home ring fill
	RingMax = 100

	// Badge thresholds
	EcoScoreBadgeThreshold = 50
)

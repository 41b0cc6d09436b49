package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MaxStreakLookbackDays bounds the backward walk of the streak calculator
	// when a habit has no completions at all (~10 years).
	MaxStreakLookbackDays = 3650
)

package models

import "github.com/julianstephens/aurapulse/internal/constants"

type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// Valid reports whether i is exactly one of High, Medium or Low.
func (i Impact) Valid() bool {
	return i == ImpactHigh || i == ImpactMedium || i == ImpactLow
}

// Suggestion is produced by the advisor only. It is never persisted.
type Suggestion struct {
	Title      string `json:"title"`
	Impact     Impact `json:"impact"`
	Suggestion string `json:"suggestion"`
}

// Estimate is the answer of the duration estimator for a goal.
type Estimate struct {
	Hours float64 `json:"hours"`
	Info  string  `json:"info"`
}

// FallbackEstimate is used whenever an estimate cannot be obtained.
func FallbackEstimate() Estimate {
	return Estimate{
		Hours: constants.FallbackEstimateHours,
		Info:  constants.FallbackEstimateInfo,
	}
}

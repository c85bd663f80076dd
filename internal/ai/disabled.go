package ai

import (
	"context"
	"errors"

	"github.com/julianstephens/aurapulse/internal/models"
)

// ErrDisabled is returned by Disabled for every request.
var ErrDisabled = errors.New("ai features disabled: no api key configured")

// Disabled stands in for Gemini when no API key is available. Every call
// fails, so callers fall back to their degraded behavior.
type Disabled struct{}

func (Disabled) Suggest(context.Context, []models.Activity, []models.LongTermGoal) ([]models.Suggestion, error) {
	return nil, ErrDisabled
}

func (Disabled) Estimate(context.Context, string, string, models.GoalType) (models.Estimate, error) {
	return models.Estimate{}, ErrDisabled
}

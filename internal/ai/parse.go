package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/models"
)

// ErrEmptyResponse is returned when the model answered with no text.
var ErrEmptyResponse = errors.New("empty model response")

// DecodeSuggestions parses a JSON array of suggestions. Entries with an
// unknown impact or a blank title/suggestion are dropped, and at most
// constants.MaxSuggestions entries are kept. Blank input means no suggestions.
func DecodeSuggestions(text string) ([]models.Suggestion, error) {
	text = stripFence(text)
	if text == "" {
		return []models.Suggestion{}, nil
	}

	var raw []models.Suggestion
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}

	out := make([]models.Suggestion, 0, len(raw))
	for _, s := range raw {
		s.Title = strings.TrimSpace(s.Title)
		s.Suggestion = strings.TrimSpace(s.Suggestion)
		if s.Title == "" || s.Suggestion == "" || !s.Impact.Valid() {
			continue
		}
		out = append(out, s)
		if len(out) == constants.MaxSuggestions {
			break
		}
	}
	return out, nil
}

// DecodeEstimate parses a {"hours", "info"} object. Hours must be positive.
// Empty text yields the standard estimate.
func DecodeEstimate(text string) (models.Estimate, error) {
	text = stripFence(text)
	if text == "" {
		return models.Estimate{Hours: constants.FallbackEstimateHours, Info: constants.EmptyEstimateInfo}, nil
	}

	var est models.Estimate
	if err := json.Unmarshal([]byte(text), &est); err != nil {
		return models.Estimate{}, fmt.Errorf("failed to decode estimate: %w", err)
	}
	if est.Hours <= 0 {
		return models.Estimate{}, fmt.Errorf("estimate must be positive, got %v hours", est.Hours)
	}
	est.Info = strings.TrimSpace(est.Info)
	return est, nil
}

// stripFence removes a surrounding ```json ... ``` block if the model added one.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

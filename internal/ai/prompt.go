package ai

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"github.com/julianstephens/aurapulse/internal/models"
)

// SuggestionPrompt renders the day's schedule and the active goals into the
// optimization prompt.
func SuggestionPrompt(activities []models.Activity, goals []models.LongTermGoal) string {
	var b strings.Builder
	b.WriteString("Analyze this daily schedule and long-term goals. Provide 3-5 constructive suggestions.\n")
	b.WriteString("Schedule:\n")
	for _, a := range activities {
		fmt.Fprintf(&b, "%s-%s: %s (%s)\n", a.StartTime, a.EndTime, a.Title, a.Category)
	}
	b.WriteString("\nActive Goals:\n")
	for _, g := range goals {
		fmt.Fprintf(&b, "%s (%s): %s/%s hours done\n", g.Title, g.Type, formatHours(g.CompletedHours), formatHours(g.EstimatedTotalHours))
	}
	return b.String()
}

// EstimatePrompt asks for the total effort of a book or course.
func EstimatePrompt(title, creator string, goalType models.GoalType) string {
	return fmt.Sprintf(
		"Provide an accurate estimation of how many hours it takes to complete the %s %q by %s.\n"+
			"For books, estimate average reading time. For courses, estimate total video/study time.\n"+
			"Return a JSON object with 'hours' (number) and 'info' (short string).",
		goalType, title, creator)
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func suggestionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title": {Type: genai.TypeString},
				"impact": {
					Type: genai.TypeString,
					Enum: []string{string(models.ImpactHigh), string(models.ImpactMedium), string(models.ImpactLow)},
				},
				"suggestion": {Type: genai.TypeString},
			},
			Required: []string{"title", "impact", "suggestion"},
		},
	}
}

func estimateSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"hours": {Type: genai.TypeNumber},
			"info":  {Type: genai.TypeString},
		},
		Required: []string{"hours", "info"},
	}
}

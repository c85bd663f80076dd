package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/logger"
	"github.com/julianstephens/aurapulse/internal/models"
)

// Config holds the settings for the Gemini collaborator.
type Config struct {
	APIKey            string
	Model             string
	RequestsPerMinute int
	Burst             int
}

// generator is the part of *genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini answers suggestion and estimation requests with a Gemini model.
// It is safe for concurrent use.
type Gemini struct {
	models  generator
	model   string
	limiter *rate.Limiter
}

// NewGemini creates a client for the Gemini API.
func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return newGemini(client.Models, cfg), nil
}

func newGemini(g generator, cfg Config) *Gemini {
	model := cfg.Model
	if model == "" {
		model = constants.DefaultModel
	}
	return &Gemini{
		models:  g,
		model:   model,
		limiter: newLimiter(cfg.RequestsPerMinute, cfg.Burst),
	}
}

func newLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

// Suggest asks the model for 3-5 suggestions about the given day. A day
// without activities yields no suggestions and no request.
func (g *Gemini) Suggest(ctx context.Context, activities []models.Activity, goals []models.LongTermGoal) ([]models.Suggestion, error) {
	if len(activities) == 0 {
		return []models.Suggestion{}, nil
	}

	text, err := g.generate(ctx, SuggestionPrompt(activities, goals), suggestionSchema())
	if err != nil {
		return nil, err
	}
	return DecodeSuggestions(text)
}

// Estimate asks the model how many hours the goal takes in total.
func (g *Gemini) Estimate(ctx context.Context, title, creator string, goalType models.GoalType) (models.Estimate, error) {
	text, err := g.generate(ctx, EstimatePrompt(title, creator, goalType), estimateSchema())
	if err != nil {
		return models.Estimate{}, err
	}
	return DecodeEstimate(text)
}

func (g *Gemini) generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	logger.Debug("Gemini request completed", "model", g.model, "elapsed", time.Since(start))

	if resp == nil {
		return "", ErrEmptyResponse
	}
	return resp.Text(), nil
}

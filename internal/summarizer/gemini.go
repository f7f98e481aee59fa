package summarizer

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/vidbrief/backend/internal/pipeline/domain"
)

const systemInstruction = "You are a helpful assistant that summarizes video transcripts accurately and concisely."

// Config holds Gemini client settings. Decoding parameters are fixed at
// a low temperature and a bounded output length so summaries stay
// reasonably deterministic and bounded in cost.
type Config struct {
	APIKey          string
	Model           string
	MaxOutputTokens int32
	Temperature     float32
}

// Client generates summaries with the Gemini API.
type Client struct {
	client          *genai.Client
	model           string
	maxOutputTokens int32
	temperature     float32
	logger          *slog.Logger
}

// New creates a Gemini-backed summarizer.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = 1000
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.5
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{
		client:          client,
		model:           cfg.Model,
		maxOutputTokens: cfg.MaxOutputTokens,
		temperature:     cfg.Temperature,
		logger:          logger,
	}, nil
}

// Summarize sends the transcript to the model and returns the generated
// text. There is no retry here: a failure propagates to the caller.
func (c *Client) Summarize(ctx context.Context, transcript string, cfg domain.SummaryConfig) (string, error) {
	prompt := BuildPrompt(transcript, cfg)

	c.logger.Debug("Requesting summary",
		slog.String("model", c.model),
		slog.String("length", cfg.Length),
		slog.String("style", cfg.Style),
		slog.Int("focus_areas", len(cfg.FocusAreas)),
	)

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		Temperature:       genai.Ptr(c.temperature),
		MaxOutputTokens:   c.maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}

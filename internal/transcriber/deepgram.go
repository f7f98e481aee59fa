package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.deepgram.com"

// Config holds Deepgram client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client calls the Deepgram pre-recorded transcription API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Deepgram client.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Minute
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// transcriptionResponse is the subset of the Deepgram envelope we read.
type transcriptionResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// Transcribe submits audio for transcription with punctuation and
// speaker diarization enabled, and returns the top-ranked alternative
// of the first channel. Additional channels and per-speaker segments
// are discarded here; only the flat transcript text is used downstream.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	url := c.baseURL + "/v1/listen?punctuate=true&diarize=true"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "audio/mp3")

	c.logger.Debug("Sending transcription request",
		slog.Int("audio_bytes", len(audio)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("transcription service returned %d: %s", resp.StatusCode, string(body))
	}

	var envelope transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}

	if len(envelope.Results.Channels) == 0 || len(envelope.Results.Channels[0].Alternatives) == 0 {
		return "", fmt.Errorf("transcription response contains no alternatives")
	}

	alt := envelope.Results.Channels[0].Alternatives[0]

	c.logger.Debug("Transcription received",
		slog.Int("transcript_chars", len(alt.Transcript)),
		slog.Float64("confidence", alt.Confidence),
	)

	return alt.Transcript, nil
}

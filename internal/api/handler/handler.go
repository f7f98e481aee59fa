package handler

import (
	"context"
	"log/slog"

	"github.com/vidbrief/backend/internal/pipeline"
	"github.com/vidbrief/backend/internal/pipeline/domain"
)

// SummaryStore is the read side of the summary repository.
type SummaryStore interface {
	GetSummaryByID(ctx context.Context, summaryID string) (*domain.Summary, error)
	ListSummariesByUser(ctx context.Context, userID string) ([]*domain.Summary, error)
}

// EventPublisher publishes completion events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, body []byte, contentType string) error
}

// HealthChecker reports whether a backing service is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Dependencies holds all dependencies needed by handlers. Publisher may
// be nil, which disables completion events. DB may be nil, which skips
// the database probe in the health endpoint.
type Dependencies struct {
	Logger    *slog.Logger
	Pipeline  pipeline.Pipeline
	Store     SummaryStore
	Publisher EventPublisher
	DB        HealthChecker
}

// SummaryHandler handles summary-related HTTP requests
type SummaryHandler struct {
	logger    *slog.Logger
	pipeline  pipeline.Pipeline
	store     SummaryStore
	publisher EventPublisher
}

// NewSummaryHandler creates a new SummaryHandler instance
func NewSummaryHandler(deps *Dependencies) *SummaryHandler {
	return &SummaryHandler{
		logger:    deps.Logger,
		pipeline:  deps.Pipeline,
		store:     deps.Store,
		publisher: deps.Publisher,
	}
}

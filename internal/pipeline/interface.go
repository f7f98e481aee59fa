package pipeline

import (
	"context"
	"io"

	"github.com/vidbrief/backend/internal/pipeline/domain"
)

// Request carries one uploaded video through the pipeline. Content is
// streamed into the job workspace, so the upload never needs to be
// buffered in memory.
type Request struct {
	UserID      string
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
	Config      domain.SummaryConfig
}

// Pipeline converts an uploaded video into a persisted summary record
// and returns the new summary id.
type Pipeline interface {
	Process(ctx context.Context, req Request) (string, error)
}

// ArtifactStore persists the extracted audio durably and returns a
// stable playback URL.
type ArtifactStore interface {
	Upload(ctx context.Context, key string, data []byte) (string, error)
}

// Transcriber converts audio bytes into transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Summarizer produces a summary of the transcript shaped by the config.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string, cfg domain.SummaryConfig) (string, error)
}

// Repository writes completed summary records.
type Repository interface {
	CreateSummary(ctx context.Context, summary *domain.Summary) error
}

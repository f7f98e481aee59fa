package pipeline

import (
	"log/slog"
	"os"
	"time"

	"github.com/vidbrief/backend/pkg/executor"
)

// Config holds pipeline tuning knobs. Zero values fall back to the
// defaults applied in New.
type Config struct {
	FFmpegPath     string
	TempDir        string
	MaxUploadBytes int64
	ExtractTimeout time.Duration
}

type implPipeline struct {
	cfg         Config
	workspaces  WorkspaceManager
	executor    executor.Executor
	artifacts   ArtifactStore
	transcriber Transcriber
	summarizer  Summarizer
	repo        Repository
	logger      *slog.Logger
}

// New creates a Pipeline. All external collaborators are injected so
// tests can substitute fakes for the storage, speech and generative
// services.
func New(
	cfg Config,
	exec executor.Executor,
	artifacts ArtifactStore,
	transcriber Transcriber,
	summarizer Summarizer,
	repo Repository,
	logger *slog.Logger,
) Pipeline {
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = "ffmpeg"
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.MaxUploadBytes == 0 {
		cfg.MaxUploadBytes = MaxUploadBytes
	}
	if cfg.ExtractTimeout == 0 {
		cfg.ExtractTimeout = 5 * time.Minute
	}

	return &implPipeline{
		cfg:         cfg,
		workspaces:  WorkspaceManager{Root: cfg.TempDir},
		executor:    exec,
		artifacts:   artifacts,
		transcriber: transcriber,
		summarizer:  summarizer,
		repo:        repo,
		logger:      logger,
	}
}

package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vidbrief/backend/internal/pipeline/domain"
)

// Process runs the full video-to-summary pipeline for one upload and
// returns the id of the persisted record. Stages run strictly in
// sequence and are each attempted exactly once; the first failure
// aborts the run. The record is written only after every stage has
// succeeded, so a summary either exists fully formed or not at all.
func (p *implPipeline) Process(ctx context.Context, req Request) (string, error) {
	// Stage 1: validate before any resource is allocated.
	if req.UserID == "" {
		return "", domain.NewStageError(domain.StageValidating, domain.ErrMissingUserID)
	}
	if err := req.Config.Validate(); err != nil {
		return "", domain.NewStageError(domain.StageValidating, err)
	}
	if err := ValidateUpload(req.ContentType, req.Size, p.cfg.MaxUploadBytes); err != nil {
		return "", domain.NewStageError(domain.StageValidating, err)
	}

	jobID := uuid.New().String()
	log := p.logger.With(slog.String("summary_id", jobID), slog.String("user_id", req.UserID))

	log.Info("Starting summary pipeline",
		slog.String("file_name", req.FileName),
		slog.Int64("size_bytes", req.Size),
	)

	// Stage 2: extract audio inside a job-scoped workspace.
	ws, err := p.workspaces.Acquire(jobID)
	if err != nil {
		return "", domain.NewStageError(domain.StageExtracting, err)
	}
	// The workspace is removed on every exit path. A release failure is
	// logged rather than returned so it can never mask a stage error.
	defer func() {
		if relErr := p.workspaces.Release(ws); relErr != nil {
			log.Warn("Failed to release workspace",
				slog.String("dir", ws.Dir),
				slog.String("error", relErr.Error()),
			)
		}
	}()

	if err := writeUpload(ws.InputPath(), req.Content); err != nil {
		return "", domain.NewStageError(domain.StageExtracting, err)
	}

	if err := p.extractAudio(ctx, ws.InputPath(), ws.AudioPath()); err != nil {
		log.Error("Audio extraction failed", slog.String("error", err.Error()))
		return "", domain.NewStageError(domain.StageExtracting,
			fmt.Errorf("%w: %v", domain.ErrTranscodeFailed, err))
	}

	audio, err := os.ReadFile(ws.AudioPath())
	if err != nil {
		return "", domain.NewStageError(domain.StageExtracting,
			fmt.Errorf("%w: %v", domain.ErrTranscodeFailed, err))
	}

	log.Info("Audio extracted", slog.Int("audio_bytes", len(audio)))

	// Stage 3: upload the audio artifact. Without a retained artifact
	// the transcript is not auditable, so an upload failure is fatal.
	audioURL, err := p.artifacts.Upload(ctx, jobID+"/audio.mp3", audio)
	if err != nil {
		log.Error("Audio upload failed", slog.String("error", err.Error()))
		return "", domain.NewStageError(domain.StageUploading,
			fmt.Errorf("%w: %v", domain.ErrUploadFailed, err))
	}

	log.Info("Audio uploaded", slog.String("audio_url", audioURL))

	// Stage 4: transcribe.
	transcript, err := p.transcriber.Transcribe(ctx, audio)
	if err != nil {
		log.Error("Transcription failed", slog.String("error", err.Error()))
		return "", domain.NewStageError(domain.StageTranscribing,
			fmt.Errorf("%w: %v", domain.ErrTranscriptionFailed, err))
	}
	if strings.TrimSpace(transcript) == "" {
		log.Error("Transcription returned no text")
		return "", domain.NewStageError(domain.StageTranscribing,
			fmt.Errorf("%w: empty transcript", domain.ErrTranscriptionFailed))
	}

	log.Info("Transcription complete", slog.Int("transcript_chars", len(transcript)))

	// Stage 5: summarize. Not retried: a transient failure here aborts
	// the job and discards the transcript.
	summaryText, err := p.summarizer.Summarize(ctx, transcript, req.Config)
	if err != nil {
		log.Error("Summarization failed", slog.String("error", err.Error()))
		return "", domain.NewStageError(domain.StageSummarizing,
			fmt.Errorf("%w: %v", domain.ErrSummarizationFailed, err))
	}

	// Stage 6: persist the fully formed record.
	record := &domain.Summary{
		ID:               jobID,
		UserID:           req.UserID,
		OriginalFileName: req.FileName,
		AudioURL:         audioURL,
		Transcript:       transcript,
		Summary:          summaryText,
		Config:           req.Config,
		CreatedAt:        time.Now().UTC(),
	}

	if err := p.repo.CreateSummary(ctx, record); err != nil {
		log.Error("Failed to persist summary", slog.String("error", err.Error()))
		return "", domain.NewStageError(domain.StagePersisting, err)
	}

	log.Info("Summary pipeline complete")
	return jobID, nil
}

// writeUpload streams the upload body into the workspace.
func writeUpload(path string, content io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		return fmt.Errorf("write upload file: %w", err)
	}

	return f.Close()
}

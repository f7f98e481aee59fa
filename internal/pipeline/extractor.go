package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// extractAudio strips the video track and produces a 128k MP3 at
// audioPath. ffmpeg runs under the configured extraction timeout; a
// deadline expiry is reported like any other transcode failure.
func (p *implPipeline) extractAudio(ctx context.Context, videoPath, audioPath string) error {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.ExtractTimeout)
	defer cancel()

	args := []string{
		"-i", videoPath,
		"-vn", // discard the video track
		"-acodec", "libmp3lame",
		"-b:a", "128k",
		"-y",
		audioPath,
	}

	p.logger.Debug("Running audio extraction",
		slog.String("input", videoPath),
		slog.String("output", audioPath),
	)

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}

	// An engine that exits cleanly but writes nothing is still a failure.
	info, err := os.Stat(audioPath)
	if err != nil {
		return fmt.Errorf("no audio output produced: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("audio output is empty")
	}

	return nil
}

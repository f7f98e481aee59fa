package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor stands in for the ffmpeg binary. run receives the full
// command line and can write (or skip writing) the output file to
// exercise each failure mode.
type fakeExecutor struct {
	calls [][]string
	run   func(name string, args []string) (string, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)
	if f.run != nil {
		return f.run(name, args)
	}
	return "", nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestPipeline(t *testing.T, exec *fakeExecutor) *implPipeline {
	t.Helper()
	p := New(Config{
		FFmpegPath:     "ffmpeg",
		TempDir:        t.TempDir(),
		ExtractTimeout: time.Minute,
	}, exec, nil, nil, nil, nil, discardLogger())
	return p.(*implPipeline)
}

func TestExtractAudio(t *testing.T) {
	t.Run("successful extraction", func(t *testing.T) {
		dir := t.TempDir()
		audioPath := dir + "/audio.mp3"

		exec := &fakeExecutor{
			run: func(name string, args []string) (string, error) {
				return "", os.WriteFile(audioPath, []byte("mp3-bytes"), 0o644)
			},
		}
		p := newTestPipeline(t, exec)

		err := p.extractAudio(context.Background(), dir+"/input.mp4", audioPath)
		require.NoError(t, err)

		require.Len(t, exec.calls, 1)
		call := exec.calls[0]
		assert.Equal(t, "ffmpeg", call[0])
		assert.Contains(t, call, "-vn")
		assert.Contains(t, call, "libmp3lame")
		assert.Contains(t, call, "128k")
		assert.Contains(t, call, "-y")
		assert.Equal(t, audioPath, call[len(call)-1])
	})

	t.Run("command failure", func(t *testing.T) {
		dir := t.TempDir()
		exec := &fakeExecutor{
			run: func(name string, args []string) (string, error) {
				return "", errors.New("moov atom not found")
			},
		}
		p := newTestPipeline(t, exec)

		err := p.extractAudio(context.Background(), dir+"/input.mp4", dir+"/audio.mp3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "moov atom not found")
	})

	t.Run("clean exit with no output file", func(t *testing.T) {
		dir := t.TempDir()
		exec := &fakeExecutor{}
		p := newTestPipeline(t, exec)

		err := p.extractAudio(context.Background(), dir+"/input.mp4", dir+"/audio.mp3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no audio output produced")
	})

	t.Run("clean exit with empty output file", func(t *testing.T) {
		dir := t.TempDir()
		audioPath := dir + "/audio.mp3"
		exec := &fakeExecutor{
			run: func(name string, args []string) (string, error) {
				return "", os.WriteFile(audioPath, nil, 0o644)
			},
		}
		p := newTestPipeline(t, exec)

		err := p.extractAudio(context.Background(), dir+"/input.mp4", audioPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "audio output is empty")
	})
}

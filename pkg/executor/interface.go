package executor

import "context"

// Executor runs external commands. It exists so the pipeline can be
// tested without a real ffmpeg binary on the machine.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

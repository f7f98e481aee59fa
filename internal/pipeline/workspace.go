package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace is the job-scoped directory holding intermediate artifacts
// (the raw upload and the extracted audio). It belongs to exactly one
// job execution and is removed when that execution ends.
type Workspace struct {
	ID  string
	Dir string
}

// InputPath is where the raw upload is written.
func (w *Workspace) InputPath() string {
	return filepath.Join(w.Dir, "input.mp4")
}

// AudioPath is where the extracted audio is written.
func (w *Workspace) AudioPath() string {
	return filepath.Join(w.Dir, "audio.mp3")
}

// WorkspaceManager allocates per-job directories under Root. Job ids
// are unique, so directories of concurrent jobs cannot collide and no
// locking is needed.
type WorkspaceManager struct {
	Root string
}

// Acquire creates the directory for jobID.
func (m WorkspaceManager) Acquire(jobID string) (*Workspace, error) {
	dir := filepath.Join(m.Root, jobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace dir: %w", err)
	}
	return &Workspace{ID: jobID, Dir: dir}, nil
}

// Release removes the workspace and everything inside it.
func (m WorkspaceManager) Release(w *Workspace) error {
	if w == nil {
		return nil
	}
	if err := os.RemoveAll(w.Dir); err != nil {
		return fmt.Errorf("remove workspace dir: %w", err)
	}
	return nil
}

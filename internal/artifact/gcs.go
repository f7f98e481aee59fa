package artifact

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/storage"
)

// GCSStore uploads audio artifacts to a Cloud Storage bucket. Keys are
// derived from the job id, so re-uploading for the same job overwrites
// the existing object instead of duplicating it.
type GCSStore struct {
	bucket     *storage.BucketHandle
	bucketName string
	logger     *slog.Logger
}

// NewGCSStore wraps an existing storage client for one bucket.
func NewGCSStore(client *storage.Client, bucketName string, logger *slog.Logger) *GCSStore {
	return &GCSStore{
		bucket:     client.Bucket(bucketName),
		bucketName: bucketName,
		logger:     logger,
	}
}

// Upload writes data under key and returns the object's public URL.
func (s *GCSStore) Upload(ctx context.Context, key string, data []byte) (string, error) {
	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = "audio/mpeg"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", key, err)
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object %s: %w", key, err)
	}

	s.logger.Debug("Artifact uploaded",
		slog.String("bucket", s.bucketName),
		slog.String("key", key),
		slog.Int("size_bytes", len(data)),
	)

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, key), nil
}

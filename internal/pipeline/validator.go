package pipeline

import (
	"mime"

	"github.com/vidbrief/backend/internal/pipeline/domain"
)

const (
	// AcceptedContentType is the single video format the pipeline accepts
	AcceptedContentType = "video/mp4"

	// MaxUploadBytes is the default upload ceiling (100 MiB, inclusive)
	MaxUploadBytes int64 = 100 << 20
)

// ValidateUpload checks the declared content type and size of an upload
// before any disk or network resources are allocated. maxBytes <= 0
// applies the default limit.
func ValidateUpload(contentType string, size int64, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}

	// Declared types may carry parameters, e.g. "video/mp4; codecs=avc1".
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != AcceptedContentType {
		return domain.ErrUnsupportedType
	}

	if size > maxBytes {
		return domain.ErrFileTooLarge
	}

	return nil
}

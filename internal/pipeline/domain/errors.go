package domain

import "errors"

var (
	// ErrUnsupportedType is returned when the upload's declared content
	// type is not the accepted video format
	ErrUnsupportedType = errors.New("unsupported content type")

	// ErrFileTooLarge is returned when the upload exceeds the maximum size
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")

	// ErrMissingUserID is returned when the request carries no user id
	ErrMissingUserID = errors.New("user id is required")

	// ErrInvalidConfig is returned when the summary config carries an
	// unknown length or style, or focus areas that fail to parse
	ErrInvalidConfig = errors.New("invalid summary config")

	// ErrTranscodeFailed is returned when ffmpeg reports an error or
	// produces no audio output
	ErrTranscodeFailed = errors.New("audio extraction failed")

	// ErrUploadFailed is returned when the extracted audio cannot be
	// stored durably
	ErrUploadFailed = errors.New("audio upload failed")

	// ErrTranscriptionFailed is returned on a speech-to-text service
	// error or an empty transcript
	ErrTranscriptionFailed = errors.New("transcription failed")

	// ErrSummarizationFailed is returned on a generative service error
	ErrSummarizationFailed = errors.New("summarization failed")

	// ErrSummaryNotFound is returned when no record exists for an id
	ErrSummaryNotFound = errors.New("summary not found")

	// ErrSummaryExists is returned on an insert with a duplicate id
	ErrSummaryExists = errors.New("summary already exists")
)

// IsValidationError reports whether err is caller-correctable and
// should map to a 4xx response rather than a pipeline failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnsupportedType) ||
		errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrMissingUserID) ||
		errors.Is(err, ErrInvalidConfig)
}

// StageError attributes a pipeline failure to the stage it occurred in
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps err with the stage that produced it
func NewStageError(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}

package domain

// Summary length options
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// Summary style options
const (
	StyleConcise      = "concise"
	StyleDetailed     = "detailed"
	StyleBulletPoints = "bullet-points"
)

// Pipeline stage names, in execution order. A job walks these strictly
// in sequence; the first failing stage terminates the run.
const (
	StageValidating   = "VALIDATING"
	StageExtracting   = "EXTRACTING"
	StageUploading    = "UPLOADING"
	StageTranscribing = "TRANSCRIBING"
	StageSummarizing  = "SUMMARIZING"
	StagePersisting   = "PERSISTING"
)

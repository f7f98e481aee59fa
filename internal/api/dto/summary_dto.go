package dto

import (
	"time"

	"github.com/vidbrief/backend/internal/pipeline/domain"
)

// CreateSummaryResponse is returned when the pipeline completes.
type CreateSummaryResponse struct {
	Success   bool   `json:"success"`
	SummaryID string `json:"summaryId"`
}

// ErrorResponse is the failure envelope for all endpoints. Details
// carries diagnostics for pipeline failures and is omitted otherwise.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SummaryDTO is the wire form of a persisted summary record.
type SummaryDTO struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	OriginalFileName string           `json:"originalFileName"`
	AudioURL         string           `json:"audioUrl"`
	Transcript       string           `json:"transcript"`
	Summary          string           `json:"summary"`
	SummaryConfig    SummaryConfigDTO `json:"summaryConfig"`
	CreatedAt        string           `json:"createdAt"`
}

// SummaryConfigDTO mirrors domain.SummaryConfig on the wire.
type SummaryConfigDTO struct {
	Length     string   `json:"length"`
	Style      string   `json:"style"`
	FocusAreas []string `json:"focusAreas"`
}

// NewSummaryDTO converts a domain record for serialization. FocusAreas
// is always rendered as an array, never null.
func NewSummaryDTO(s *domain.Summary) SummaryDTO {
	focusAreas := s.Config.FocusAreas
	if focusAreas == nil {
		focusAreas = []string{}
	}

	return SummaryDTO{
		ID:               s.ID,
		UserID:           s.UserID,
		OriginalFileName: s.OriginalFileName,
		AudioURL:         s.AudioURL,
		Transcript:       s.Transcript,
		Summary:          s.Summary,
		SummaryConfig: SummaryConfigDTO{
			Length:     s.Config.Length,
			Style:      s.Config.Style,
			FocusAreas: focusAreas,
		},
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

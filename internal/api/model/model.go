package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vidbrief/backend/internal/pipeline/domain"
)

// Summary is the database row for a completed summary. Config is the
// JSONB-encoded summary configuration.
type Summary struct {
	SummaryID        string    `db:"summary_id"`
	UserID           string    `db:"user_id"`
	OriginalFileName string    `db:"original_file_name"`
	AudioURL         string    `db:"audio_url"`
	Transcript       string    `db:"transcript"`
	Summary          string    `db:"summary"`
	Config           []byte    `db:"config"`
	CreatedAt        time.Time `db:"created_at"`
}

// FromDomain converts a domain record into its row form.
func FromDomain(s *domain.Summary) (*Summary, error) {
	cfg, err := json.Marshal(s.Config)
	if err != nil {
		return nil, fmt.Errorf("marshal summary config: %w", err)
	}

	return &Summary{
		SummaryID:        s.ID,
		UserID:           s.UserID,
		OriginalFileName: s.OriginalFileName,
		AudioURL:         s.AudioURL,
		Transcript:       s.Transcript,
		Summary:          s.Summary,
		Config:           cfg,
		CreatedAt:        s.CreatedAt,
	}, nil
}

// ToDomain converts a row back into the domain record.
func (m *Summary) ToDomain() (*domain.Summary, error) {
	var cfg domain.SummaryConfig
	if len(m.Config) > 0 {
		if err := json.Unmarshal(m.Config, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal summary config: %w", err)
		}
	}

	return &domain.Summary{
		ID:               m.SummaryID,
		UserID:           m.UserID,
		OriginalFileName: m.OriginalFileName,
		AudioURL:         m.AudioURL,
		Transcript:       m.Transcript,
		Summary:          m.Summary,
		Config:           cfg,
		CreatedAt:        m.CreatedAt,
	}, nil
}

package domain

import "time"

// Summary represents one completed video-to-summary job. A Summary is
// only ever persisted fully formed: every field below is populated
// before the record reaches storage.
type Summary struct {
	ID               string
	UserID           string
	OriginalFileName string
	AudioURL         string
	Transcript       string
	Summary          string
	Config           SummaryConfig
	CreatedAt        time.Time
}

// SummaryConfig controls how the generated summary is written.
type SummaryConfig struct {
	Length     string   `json:"length"`
	Style      string   `json:"style"`
	FocusAreas []string `json:"focusAreas"`
}

// DefaultSummaryConfig returns the config used when the caller supplies
// no overrides.
func DefaultSummaryConfig() SummaryConfig {
	return SummaryConfig{
		Length: LengthMedium,
		Style:  StyleConcise,
	}
}

// Validate checks that length and style are one of the accepted values.
// Empty fields are filled with defaults rather than rejected.
func (c *SummaryConfig) Validate() error {
	if c.Length == "" {
		c.Length = LengthMedium
	}
	if c.Style == "" {
		c.Style = StyleConcise
	}

	switch c.Length {
	case LengthShort, LengthMedium, LengthLong:
	default:
		return ErrInvalidConfig
	}

	switch c.Style {
	case StyleConcise, StyleDetailed, StyleBulletPoints:
	default:
		return ErrInvalidConfig
	}

	return nil
}

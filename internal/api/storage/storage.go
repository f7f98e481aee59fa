package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/vidbrief/backend/internal/api/model"
	"github.com/vidbrief/backend/internal/pipeline/domain"
	"github.com/vidbrief/backend/shared/postgresql"
)

// uniqueViolation is the Postgres error code for duplicate keys
const uniqueViolation = "23505"

// Storage is the summary repository backed by Postgres. Records are
// inserted exactly once and never updated; the only queries are point
// lookup by id and per-user listing.
type Storage struct {
	db *sqlx.DB
}

func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{
		db: pg.GetDB(),
	}
}

// CreateSummary inserts a completed summary record. A duplicate id
// returns domain.ErrSummaryExists; with UUID ids this should never
// happen in practice.
func (s *Storage) CreateSummary(ctx context.Context, summary *domain.Summary) error {
	row, err := model.FromDomain(summary)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO summaries (
			summary_id, user_id, original_file_name, audio_url,
			transcript, summary, config, created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8
		)
	`

	_, err = s.db.ExecContext(
		ctx,
		query,
		row.SummaryID,
		row.UserID,
		row.OriginalFileName,
		row.AudioURL,
		row.Transcript,
		row.Summary,
		row.Config,
		row.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrSummaryExists
		}
		return fmt.Errorf("failed to create summary: %w", err)
	}

	return nil
}

// GetSummaryByID returns a single record or domain.ErrSummaryNotFound.
func (s *Storage) GetSummaryByID(ctx context.Context, summaryID string) (*domain.Summary, error) {
	var row model.Summary
	query := `
		SELECT
			summary_id, user_id, original_file_name, audio_url,
			transcript, summary, config, created_at
		FROM summaries
		WHERE summary_id = $1
	`

	err := s.db.GetContext(ctx, &row, query, summaryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	return row.ToDomain()
}

// ListSummariesByUser returns all records for a user, newest first.
// The id tiebreaker keeps ordering deterministic for records persisted
// within the same timestamp.
func (s *Storage) ListSummariesByUser(ctx context.Context, userID string) ([]*domain.Summary, error) {
	query := `
		SELECT
			summary_id, user_id, original_file_name, audio_url,
			transcript, summary, config, created_at
		FROM summaries
		WHERE user_id = $1
		ORDER BY created_at DESC, summary_id DESC
	`

	var rows []model.Summary
	if err := s.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	summaries := make([]*domain.Summary, 0, len(rows))
	for i := range rows {
		summary, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

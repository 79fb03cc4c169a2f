package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/danielv14/skymning/internal/core/domain"
)

type PostgresEntryRepository struct {
	db *sqlx.DB
}

func NewPostgresEntryRepository(db *sqlx.DB) *PostgresEntryRepository {
	return &PostgresEntryRepository{db: db}
}

// Upsert writes the day's entry. The unique index on (user_id, entry_date)
// resolves concurrent writes for the same day: the last writer wins. A
// previously soft-deleted row for the day is revived by the same statement.
func (r *PostgresEntryRepository) Upsert(ctx context.Context, entry *domain.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO journal_entries (
			id, user_id, entry_date,
			mood, reflection,
			created_at, updated_at, deleted_at
		) VALUES (
			:id, :user_id, :entry_date,
			:mood, :reflection,
			:created_at, :updated_at, NULL
		)
		ON CONFLICT (user_id, entry_date) DO UPDATE SET
			mood = EXCLUDED.mood,
			reflection = EXCLUDED.reflection,
			updated_at = EXCLUDED.updated_at,
			deleted_at = NULL`

	_, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return errors.New("referenced user does not exist")
		}
		return err
	}
	return nil
}

func (r *PostgresEntryRepository) GetByDate(ctx context.Context, userID string, date time.Time) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	query := `
		SELECT * FROM journal_entries
		WHERE user_id = $1
		  AND entry_date = $2
		  AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &entry, query, userID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// ListByDateRange returns active entries with entry_date in [from, to),
// most recent first.
func (r *PostgresEntryRepository) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.JournalEntry, error) {
	entries := []*domain.JournalEntry{}

	query := `
		SELECT * FROM journal_entries
		WHERE user_id = $1
		  AND entry_date >= $2
		  AND entry_date < $3
		  AND deleted_at IS NULL
		ORDER BY entry_date DESC`

	err := r.db.SelectContext(ctx, &entries, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// RecentEntryDates returns the most recent active entry dates as "YYYY-MM-DD"
// strings, newest first, capped at limit. This is the streak walker's feed.
func (r *PostgresEntryRepository) RecentEntryDates(ctx context.Context, userID string, limit int) ([]string, error) {
	dates := []string{}

	query := `
		SELECT to_char(entry_date, 'YYYY-MM-DD') FROM journal_entries
		WHERE user_id = $1
		  AND deleted_at IS NULL
		ORDER BY entry_date DESC
		LIMIT $2`

	err := r.db.SelectContext(ctx, &dates, query, userID, limit)
	if err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *PostgresEntryRepository) Delete(ctx context.Context, userID string, date time.Time) error {
	now := time.Now().UTC()

	query := `
		UPDATE journal_entries
		SET deleted_at = $1,
		    updated_at = $1
		WHERE user_id = $2
		  AND entry_date = $3
		  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, now, userID, date)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrEntryNotFound = errors.New("journal entry not found")
)

type EntryRepository interface {
	// Upsert writes the day's entry, replacing any existing active entry for
	// the same (user, date). Last write wins; concurrent tabs are resolved at
	// the storage layer, not here.
	Upsert(ctx context.Context, entry *JournalEntry) error

	// GetByDate retrieves the single active entry for a calendar day.
	GetByDate(ctx context.Context, userID string, date time.Time) (*JournalEntry, error)

	// ListByDateRange retrieves active entries inside the half-open range
	// [from, to), most recent first. The analytics callers rely on that
	// ordering for the recent-half/older-half split.
	ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*JournalEntry, error)

	// RecentEntryDates returns the distinct "YYYY-MM-DD" days with an active
	// entry, most recent first, capped at limit. This is the bounded window
	// the streak calculator walks; the cap keeps the query cost flat no
	// matter how long the journal gets.
	RecentEntryDates(ctx context.Context, userID string, limit int) ([]string, error)

	// Delete soft-deletes the day's entry.
	Delete(ctx context.Context, userID string, date time.Time) error
}

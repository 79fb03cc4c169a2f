package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidMood       = errors.New("mood must be between 1 and 5")
	ErrReflectionTooLong = errors.New("reflection is too long (max 2000 chars)")
	ErrEntryInvalidUser  = errors.New("invalid user id")
	ErrEntryDateZero     = errors.New("entry date is required")
)

const (
	MinMood          = 1
	MaxMood          = 5
	MaxReflectionLen = 2000
)

// JournalEntry is one day's record: a mood rating plus an optional short
// reflection. At most one active entry exists per (user, calendar day);
// writes are upserts and the last one wins.
type JournalEntry struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`

	EntryDate  time.Time `json:"entry_date" db:"entry_date"`
	Mood       int       `json:"mood" db:"mood"`
	Reflection string    `json:"reflection" db:"reflection"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

func NewJournalEntry(userID string, date time.Time, mood int, reflection string) (*JournalEntry, error) {
	entry := &JournalEntry{
		UserID:     userID,
		EntryDate:  midnightUTC(date),
		Mood:       mood,
		Reflection: strings.TrimSpace(reflection),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	return entry, nil
}

func (e *JournalEntry) Validate() error {
	if strings.TrimSpace(e.UserID) == "" {
		return ErrEntryInvalidUser
	}
	if e.EntryDate.IsZero() {
		return ErrEntryDateZero
	}
	if e.Mood < MinMood || e.Mood > MaxMood {
		return ErrInvalidMood
	}
	if utf8.RuneCountInString(e.Reflection) > MaxReflectionLen {
		return ErrReflectionTooLong
	}
	return nil
}

// Amend replaces the day's mood and reflection in place.
func (e *JournalEntry) Amend(mood int, reflection string) error {
	if mood < MinMood || mood > MaxMood {
		return ErrInvalidMood
	}

	clean := strings.TrimSpace(reflection)
	if utf8.RuneCountInString(clean) > MaxReflectionLen {
		return ErrReflectionTooLong
	}

	e.Mood = mood
	e.Reflection = clean
	e.UpdatedAt = time.Now().UTC()
	return nil
}

// DateKey renders the entry's calendar day as its "YYYY-MM-DD" storage key.
func (e *JournalEntry) DateKey() string {
	return e.EntryDate.UTC().Format("2006-01-02")
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

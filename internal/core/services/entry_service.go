package services

import (
	"context"
	"time"

	"github.com/danielv14/skymning/internal/core/domain"
	"github.com/danielv14/skymning/internal/core/workers"
)

type EntryService struct {
	repo   domain.EntryRepository
	worker *workers.StreakWorker
}

func NewEntryService(repo domain.EntryRepository, worker *workers.StreakWorker) *EntryService {
	return &EntryService{
		repo:   repo,
		worker: worker,
	}
}

type UpsertEntryInput struct {
	UserID     string
	Date       time.Time
	Mood       int
	Reflection string
}

// Upsert writes the day's entry. If one already exists it is amended in
// place, keeping its identity and creation time; otherwise a new entry is
// created. Either way the streak worker is poked afterwards.
func (s *EntryService) Upsert(ctx context.Context, input UpsertEntryInput) (*domain.JournalEntry, error) {
	existing, err := s.repo.GetByDate(ctx, input.UserID, input.Date)
	switch err {
	case nil:
		if err := existing.Amend(input.Mood, input.Reflection); err != nil {
			return nil, err
		}
		if err := s.repo.Upsert(ctx, existing); err != nil {
			return nil, err
		}
		s.worker.Enqueue(input.UserID)
		return existing, nil

	case domain.ErrEntryNotFound:
		entry, err := domain.NewJournalEntry(input.UserID, input.Date, input.Mood, input.Reflection)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Upsert(ctx, entry); err != nil {
			return nil, err
		}
		s.worker.Enqueue(input.UserID)
		return entry, nil

	default:
		return nil, err
	}
}

func (s *EntryService) GetByDate(ctx context.Context, userID string, date time.Time) (*domain.JournalEntry, error) {
	return s.repo.GetByDate(ctx, userID, date)
}

// ListByDateRange returns active entries in [from, to), most recent first.
func (s *EntryService) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.JournalEntry, error) {
	return s.repo.ListByDateRange(ctx, userID, from, to)
}

func (s *EntryService) Delete(ctx context.Context, userID string, date time.Time) error {
	if err := s.repo.Delete(ctx, userID, date); err != nil {
		return err
	}

	s.worker.Enqueue(userID)
	return nil
}

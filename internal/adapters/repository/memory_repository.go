package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/danielv14/skymning/internal/core/domain"
)

type InMemoryEntryRepository struct {
	// userID -> dateKey ("YYYY-MM-DD") -> entry
	store map[string]map[string]*domain.JournalEntry

	mu sync.RWMutex
}

func NewInMemoryEntryRepository() *InMemoryEntryRepository {
	return &InMemoryEntryRepository{
		store: make(map[string]map[string]*domain.JournalEntry),
	}
}

func (r *InMemoryEntryRepository) Upsert(ctx context.Context, entry *domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	days, ok := r.store[entry.UserID]
	if !ok {
		days = make(map[string]*domain.JournalEntry)
		r.store[entry.UserID] = days
	}

	entry.DeletedAt = nil
	days[entry.DateKey()] = entry
	return nil
}

func (r *InMemoryEntryRepository) GetByDate(ctx context.Context, userID string, date time.Time) (*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.store[userID][date.UTC().Format("2006-01-02")]
	if !ok || entry.DeletedAt != nil {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

func (r *InMemoryEntryRepository) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*domain.JournalEntry{}
	for _, e := range r.store[userID] {
		if e.DeletedAt != nil {
			continue
		}
		if e.EntryDate.Before(from) || !e.EntryDate.Before(to) {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EntryDate.After(entries[j].EntryDate)
	})

	return entries, nil
}

func (r *InMemoryEntryRepository) RecentEntryDates(ctx context.Context, userID string, limit int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dates := []string{}
	for key, e := range r.store[userID] {
		if e.DeletedAt == nil {
			dates = append(dates, key)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	if len(dates) > limit {
		dates = dates[:limit]
	}
	return dates, nil
}

func (r *InMemoryEntryRepository) Delete(ctx context.Context, userID string, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := date.UTC().Format("2006-01-02")
	entry, ok := r.store[userID][key]
	if !ok || entry.DeletedAt != nil {
		return domain.ErrEntryNotFound
	}

	now := time.Now().UTC()
	entry.DeletedAt = &now
	entry.UpdatedAt = now
	return nil
}

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	r.store[user.ID] = user
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.store[id]
	if !ok {
		return domain.ErrUserNotFound
	}

	user.UpdateStreak(current, longest)
	return nil
}

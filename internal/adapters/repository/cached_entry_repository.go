package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danielv14/skymning/internal/core/domain"
)

var _ domain.EntryRepository = (*CachedEntryRepository)(nil)

// CachedEntryRepository caches the recent-dates feed, which every streak
// read and every worker run hits. Entry reads and writes pass straight
// through; writes invalidate the feed.
type CachedEntryRepository struct {
	next  domain.EntryRepository
	cache *redis.Client
}

func NewCachedEntryRepository(next domain.EntryRepository, cache *redis.Client) *CachedEntryRepository {
	return &CachedEntryRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedEntryRepository) cacheKey(userID string, limit int) string {
	return fmt.Sprintf("entry_dates:%s:%d", userID, limit)
}

func (r *CachedEntryRepository) invalidate(ctx context.Context, userID string) {
	pattern := fmt.Sprintf("entry_dates:%s:*", userID)

	keys, err := r.cache.Keys(ctx, pattern).Result()
	if err != nil {
		log.Printf("[CACHE] Failed to scan keys for user %s: %v", userID, err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := r.cache.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for user %s: %v", userID, err)
	}
}

func (r *CachedEntryRepository) RecentEntryDates(ctx context.Context, userID string, limit int) ([]string, error) {
	key := r.cacheKey(userID, limit)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var dates []string
		if err := json.Unmarshal([]byte(val), &dates); err == nil {
			return dates, nil
		}

		log.Printf("[CACHE] Corrupted data for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	dates, err := r.next.RecentEntryDates(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(dates); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 30*time.Minute).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return dates, nil
}

func (r *CachedEntryRepository) GetByDate(ctx context.Context, userID string, date time.Time) (*domain.JournalEntry, error) {
	return r.next.GetByDate(ctx, userID, date)
}

func (r *CachedEntryRepository) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.JournalEntry, error) {
	return r.next.ListByDateRange(ctx, userID, from, to)
}

func (r *CachedEntryRepository) Upsert(ctx context.Context, entry *domain.JournalEntry) error {
	if err := r.next.Upsert(ctx, entry); err != nil {
		return err
	}
	r.invalidate(ctx, entry.UserID)
	return nil
}

func (r *CachedEntryRepository) Delete(ctx context.Context, userID string, date time.Time) error {
	if err := r.next.Delete(ctx, userID, date); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}

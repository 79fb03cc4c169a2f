package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielv14/skymning/internal/core/domain"
	"github.com/danielv14/skymning/internal/core/services"
)

type fakeMessageCache struct {
	store map[string]string
	sets  int
	gets  int
}

func newFakeMessageCache() *fakeMessageCache {
	return &fakeMessageCache{store: make(map[string]string)}
}

func (c *fakeMessageCache) key(userID string, entryCount int, day string) string {
	return fmt.Sprintf("%s:%d:%s", userID, entryCount, day)
}

func (c *fakeMessageCache) GetMessage(ctx context.Context, userID string, entryCount int, day string) (string, bool) {
	c.gets++
	msg, ok := c.store[c.key(userID, entryCount, day)]
	return msg, ok
}

func (c *fakeMessageCache) SetMessage(ctx context.Context, userID string, entryCount int, day string, message string) {
	c.sets++
	c.store[c.key(userID, entryCount, day)] = message
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func entryOn(t *testing.T, userID string, date time.Time, mood int) *domain.JournalEntry {
	t.Helper()
	entry, err := domain.NewJournalEntry(userID, date, mood, "")
	require.NoError(t, err)
	return entry
}

func TestAnalyticsService_Streaks(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

	t.Run("Computes current and longest streak from recent dates", func(t *testing.T) {
		mockRepo := new(MockEntryRepo)
		service := services.NewAnalyticsService(mockRepo, nil).WithClock(fixedClock(today))
		ctx := context.Background()

		dates := []string{"2024-06-12", "2024-06-11", "2024-06-10"}
		mockRepo.On("RecentEntryDates", ctx, "user-1", 400).Return(dates, nil)

		info, err := service.Streaks(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, 3, info.Current)
		assert.Equal(t, 3, info.Longest)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty journal yields zero streaks", func(t *testing.T) {
		mockRepo := new(MockEntryRepo)
		service := services.NewAnalyticsService(mockRepo, nil).WithClock(fixedClock(today))
		ctx := context.Background()

		mockRepo.On("RecentEntryDates", ctx, "user-1", 400).Return([]string{}, nil)

		info, err := service.Streaks(ctx, "user-1")

		require.NoError(t, err)
		assert.Zero(t, info.Current)
		assert.Zero(t, info.Longest)
	})
}

func TestAnalyticsService_Insight(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 12, 9, 30, 0, 0, time.UTC)
	today := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, -30)
	to := today.AddDate(0, 0, 1)

	recoveryWindow := func(t *testing.T) []*domain.JournalEntry {
		// Most recent first, matching repository order.
		moods := []int{5, 5, 4, 2, 2, 1}
		entries := make([]*domain.JournalEntry, 0, len(moods))
		for i, mood := range moods {
			entries = append(entries, entryOn(t, "user-1", today.AddDate(0, 0, -i), mood))
		}
		return entries
	}

	t.Run("Classifies a recovery window as improving", func(t *testing.T) {
		mockRepo := new(MockEntryRepo)
		service := services.NewAnalyticsService(mockRepo, nil).WithClock(fixedClock(now))
		ctx := context.Background()

		mockRepo.On("ListByDateRange", ctx, "user-1", from, to).Return(recoveryWindow(t), nil)

		insight, err := service.Insight(ctx, "user-1", 0)

		require.NoError(t, err)
		require.NotNil(t, insight)
		assert.Equal(t, domain.TrendImproving, insight.Trend)
		assert.Equal(t, domain.MoodLevelMedium, insight.Level)
		assert.Equal(t, domain.StabilityFluctuating, insight.Stability)
		assert.Equal(t, 6, insight.EntryCount)
		assert.NotEmpty(t, insight.Message)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Too few entries yields nil insight and nil error", func(t *testing.T) {
		mockRepo := new(MockEntryRepo)
		service := services.NewAnalyticsService(mockRepo, nil).WithClock(fixedClock(now))
		ctx := context.Background()

		sparse := []*domain.JournalEntry{
			entryOn(t, "user-1", today, 3),
			entryOn(t, "user-1", today.AddDate(0, 0, -1), 4),
			entryOn(t, "user-1", today.AddDate(0, 0, -2), 3),
		}
		mockRepo.On("ListByDateRange", ctx, "user-1", from, to).Return(sparse, nil)

		insight, err := service.Insight(ctx, "user-1", 0)

		assert.NoError(t, err)
		assert.Nil(t, insight)
	})

	t.Run("Caches the rendered message per day", func(t *testing.T) {
		mockRepo := new(MockEntryRepo)
		cache := newFakeMessageCache()
		service := services.NewAnalyticsService(mockRepo, cache).WithClock(fixedClock(now))
		ctx := context.Background()

		mockRepo.On("ListByDateRange", ctx, "user-1", from, to).Return(recoveryWindow(t), nil)

		first, err := service.Insight(ctx, "user-1", 0)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, 1, cache.sets)

		second, err := service.Insight(ctx, "user-1", 0)
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, 1, cache.sets, "second call should hit the cache")
		assert.Equal(t, first.Message, second.Message)
	})

	t.Run("Custom window changes the range queried", func(t *testing.T) {
		mockRepo := new(MockEntryRepo)
		service := services.NewAnalyticsService(mockRepo, nil).WithClock(fixedClock(now))
		ctx := context.Background()

		weekFrom := today.AddDate(0, 0, -7)
		mockRepo.On("ListByDateRange", ctx, "user-1", weekFrom, to).Return([]*domain.JournalEntry{}, nil)

		insight, err := service.Insight(ctx, "user-1", 7)

		assert.NoError(t, err)
		assert.Nil(t, insight)
		mockRepo.AssertExpectations(t)
	})
}

func TestAnalyticsService_WeekdayPatterns(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 30, 20, 0, 0, 0, time.UTC) // a Sunday
	today := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, -90)
	to := today.AddDate(0, 0, 1)

	t.Run("Aggregates moods by weekday when the gates are met", func(t *testing.T) {
		mockRepo := new(MockEntryRepo)
		service := services.NewAnalyticsService(mockRepo, nil).WithClock(fixedClock(now))
		ctx := context.Background()

		entries := make([]*domain.JournalEntry, 0, 14)
		for i := 0; i < 14; i++ {
			entries = append(entries, entryOn(t, "user-1", today.AddDate(0, 0, -i), 3+i%2))
		}
		mockRepo.On("ListByDateRange", ctx, "user-1", from, to).Return(entries, nil)

		result, err := service.WeekdayPatterns(ctx, "user-1", 0)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 14, result.TotalEntries)
		assert.Len(t, result.Patterns, 7)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Below the evidence gate returns nil without error", func(t *testing.T) {
		mockRepo := new(MockEntryRepo)
		service := services.NewAnalyticsService(mockRepo, nil).WithClock(fixedClock(now))
		ctx := context.Background()

		entries := make([]*domain.JournalEntry, 0, 13)
		for i := 0; i < 13; i++ {
			entries = append(entries, entryOn(t, "user-1", today.AddDate(0, 0, -i), 3))
		}
		mockRepo.On("ListByDateRange", ctx, "user-1", from, to).Return(entries, nil)

		result, err := service.WeekdayPatterns(ctx, "user-1", 0)

		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

package services

import (
	"context"
	"time"

	"github.com/danielv14/skymning/internal/core/analytics"
	"github.com/danielv14/skymning/internal/core/calendar"
	"github.com/danielv14/skymning/internal/core/domain"
)

const (
	// DefaultInsightWindowDays is the trailing window the mood insight looks
	// at when the caller does not ask for another one.
	DefaultInsightWindowDays = 30

	// DefaultPatternWindowDays is the trailing window for weekday patterns.
	DefaultPatternWindowDays = 90

	streakDateWindow = 400
)

// InsightMessageCache stores the rendered insight text for a calendar day.
// The classification itself is always derived fresh; only the message string
// is cached, keyed by (user, entry count, day), matching the determinism
// guarantee of the classifier. A nil cache disables caching.
type InsightMessageCache interface {
	GetMessage(ctx context.Context, userID string, entryCount int, day string) (string, bool)
	SetMessage(ctx context.Context, userID string, entryCount int, day string, message string)
}

type AnalyticsService struct {
	entryRepo domain.EntryRepository
	cache     InsightMessageCache
	now       func() time.Time
}

func NewAnalyticsService(entryRepo domain.EntryRepository, cache InsightMessageCache) *AnalyticsService {
	return &AnalyticsService{
		entryRepo: entryRepo,
		cache:     cache,
		now:       time.Now,
	}
}

// WithClock fixes "today" for tests.
func (s *AnalyticsService) WithClock(clock func() time.Time) *AnalyticsService {
	s.now = clock
	return s
}

// Streaks computes the streak fresh from the bounded recent-dates window.
// The materialized counters on the user row may lag behind this by one
// worker run; this is the authoritative number.
func (s *AnalyticsService) Streaks(ctx context.Context, userID string) (domain.StreakInfo, error) {
	dates, err := s.entryRepo.RecentEntryDates(ctx, userID, streakDateWindow)
	if err != nil {
		return domain.StreakInfo{}, err
	}
	return analytics.ComputeStreak(dates, s.now()), nil
}

// Insight classifies the trailing mood window. A window below the minimum
// sample size yields (nil, nil): not enough data is an expected outcome, not
// an error.
func (s *AnalyticsService) Insight(ctx context.Context, userID string, windowDays int) (*domain.MoodInsight, error) {
	if windowDays <= 0 {
		windowDays = DefaultInsightWindowDays
	}

	today := calendar.Midnight(s.now())
	moods, err := s.windowMoods(ctx, userID, windowDays, today)
	if err != nil {
		return nil, err
	}

	if len(moods) < analytics.MinInsightEntries {
		return nil, nil
	}

	insight, err := analytics.Classify(moods, today)
	if err != nil {
		return nil, err
	}

	day := calendar.FormatDate(today)
	if s.cache != nil {
		if msg, ok := s.cache.GetMessage(ctx, userID, insight.EntryCount, day); ok {
			insight.Message = msg
			return insight, nil
		}
		s.cache.SetMessage(ctx, userID, insight.EntryCount, day, insight.Message)
	}

	return insight, nil
}

// WeekdayPatterns aggregates moods by day of week over the trailing window.
// Returns nil when the evidence gates are not met.
func (s *AnalyticsService) WeekdayPatterns(ctx context.Context, userID string, windowDays int) (*domain.WeekdayPatternResult, error) {
	if windowDays <= 0 {
		windowDays = DefaultPatternWindowDays
	}

	today := calendar.Midnight(s.now())
	from := calendar.AddDays(today, -windowDays)

	entries, err := s.entryRepo.ListByDateRange(ctx, userID, from, calendar.AddDays(today, 1))
	if err != nil {
		return nil, err
	}

	dated := make([]domain.DatedMood, 0, len(entries))
	for _, e := range entries {
		dated = append(dated, domain.DatedMood{Date: e.EntryDate, Mood: e.Mood})
	}

	return analytics.WeekdayPatterns(dated, windowDays, today), nil
}

// windowMoods returns the moods of the trailing window, most recent first,
// relying on the repository's descending date order.
func (s *AnalyticsService) windowMoods(ctx context.Context, userID string, windowDays int, today time.Time) ([]int, error) {
	from := calendar.AddDays(today, -windowDays)

	entries, err := s.entryRepo.ListByDateRange(ctx, userID, from, calendar.AddDays(today, 1))
	if err != nil {
		return nil, err
	}

	moods := make([]int, 0, len(entries))
	for _, e := range entries {
		moods = append(moods, e.Mood)
	}
	return moods, nil
}

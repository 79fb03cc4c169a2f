package services

import (
	"context"
	"time"

	"github.com/danielv14/skymning/internal/core/analytics"
	"github.com/danielv14/skymning/internal/core/calendar"
	"github.com/danielv14/skymning/internal/core/domain"
)

// SummaryService builds the weekly and monthly period views. All date math
// is delegated to the calendar package; this service only fetches rows and
// shapes results.
type SummaryService struct {
	entryRepo domain.EntryRepository
}

func NewSummaryService(entryRepo domain.EntryRepository) *SummaryService {
	return &SummaryService{entryRepo: entryRepo}
}

// Week aggregates one ISO week and compares it against the week before.
func (s *SummaryService) Week(ctx context.Context, userID string, week calendar.ISOWeek) (*domain.WeekSummary, error) {
	start, end := week.DateRange()

	summary, days, err := s.aggregateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	prevStart, prevEnd := week.Prev().DateRange()
	prevSummary, _, err := s.aggregateRange(ctx, userID, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}

	return &domain.WeekSummary{
		Week:       week,
		StartDate:  calendar.FormatDate(start),
		EndDate:    calendar.FormatDate(end),
		PrevWeek:   week.Prev(),
		NextWeek:   week.Next(),
		Summary:    summary,
		Comparison: analytics.Compare(summary, prevSummary),
		Days:       days,
	}, nil
}

// Month aggregates one calendar month, lists the ISO weeks touching it and
// compares against the previous month.
func (s *SummaryService) Month(ctx context.Context, userID string, year, month int) (*domain.MonthSummary, error) {
	start, end, err := calendar.MonthRange(year, month)
	if err != nil {
		return nil, err
	}

	weeks, err := calendar.ISOWeeksInMonth(year, month)
	if err != nil {
		return nil, err
	}

	summary, days, err := s.aggregateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	prevStart := start.AddDate(0, -1, 0)
	prevSummary, _, err := s.aggregateRange(ctx, userID, prevStart, start)
	if err != nil {
		return nil, err
	}

	return &domain.MonthSummary{
		Year:       year,
		Month:      month,
		StartDate:  calendar.FormatDate(start),
		EndDate:    calendar.FormatDate(end),
		Summary:    summary,
		Comparison: analytics.Compare(summary, prevSummary),
		Weeks:      weeks,
		Days:       days,
	}, nil
}

// aggregateRange fetches the range once and derives both the summary and the
// chronological per-day rows from it.
func (s *SummaryService) aggregateRange(ctx context.Context, userID string, from, to time.Time) (domain.PeriodSummary, []domain.DailyMood, error) {
	entries, err := s.entryRepo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return domain.PeriodSummary{}, nil, err
	}

	moods := make([]int, 0, len(entries))
	days := make([]domain.DailyMood, 0, len(entries))

	// Repository order is most-recent-first; the day rows read better
	// chronologically.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		moods = append(moods, e.Mood)
		days = append(days, domain.DailyMood{
			Date:       e.DateKey(),
			Mood:       e.Mood,
			Reflection: e.Reflection,
		})
	}

	return analytics.Summarize(moods), days, nil
}

package analytics

import (
	"time"

	"github.com/danielv14/skymning/internal/core/calendar"
	"github.com/danielv14/skymning/internal/core/domain"
)

// Evidence gates for weekday patterns. Below these the result would read as
// a pattern while really being noise, so the aggregator returns nil instead.
const (
	MinPatternEntries  = 14
	MinPatternWeekdays = 3
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// WeekdayPatterns buckets the moods of the trailing windowDays by day of
// week and surfaces the best and worst weekday. Returns nil when the window
// holds fewer than MinPatternEntries records or fewer than
// MinPatternWeekdays distinct weekdays: not an error, just not enough data.
func WeekdayPatterns(entries []domain.DatedMood, windowDays int, today time.Time) *domain.WeekdayPatternResult {
	cutoff := calendar.AddDays(today, -windowDays)

	var sums, counts [7]int
	total := 0
	for _, e := range entries {
		if calendar.Midnight(e.Date).Before(cutoff) {
			continue
		}
		idx := int(e.Date.UTC().Weekday())
		sums[idx] += e.Mood
		counts[idx]++
		total++
	}

	if total < MinPatternEntries {
		return nil
	}

	result := &domain.WeekdayPatternResult{TotalEntries: total}
	for idx := 0; idx < 7; idx++ {
		if counts[idx] == 0 {
			continue
		}
		result.Patterns = append(result.Patterns, domain.WeekdayPattern{
			DayIndex: idx,
			DayName:  dayNames[idx],
			Average:  float64(sums[idx]) / float64(counts[idx]),
			Count:    counts[idx],
		})
	}

	if len(result.Patterns) < MinPatternWeekdays {
		return nil
	}

	// Patterns are already in ascending day-index order, so "first wins"
	// gives the fixed 0..6 tie-break.
	best, worst := result.Patterns[0], result.Patterns[0]
	for _, p := range result.Patterns[1:] {
		if p.Average > best.Average {
			best = p
		}
		if p.Average < worst.Average {
			worst = p
		}
	}
	result.BestDay = best
	result.WorstDay = worst

	return result
}

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielv14/skymning/internal/core/domain"
)

// weekdayToday is a Sunday; weekday fixtures count backwards from it.
var weekdayToday = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

// onWeekday emits count records of the given mood on consecutive occurrences
// of a weekday, walking back in time from today.
func onWeekday(day time.Weekday, mood, count int) []domain.DatedMood {
	var out []domain.DatedMood
	cursor := weekdayToday
	for len(out) < count {
		if cursor.Weekday() == day {
			out = append(out, domain.DatedMood{Date: cursor, Mood: mood})
		}
		cursor = cursor.AddDate(0, 0, -1)
	}
	return out
}

func TestWeekdayPatterns_Gating(t *testing.T) {
	t.Run("Thirteen records are not enough", func(t *testing.T) {
		entries := append(onWeekday(time.Monday, 4, 7), onWeekday(time.Tuesday, 3, 6)...)
		require.Len(t, entries, 13)

		assert.Nil(t, WeekdayPatterns(entries, 90, weekdayToday))
	})

	t.Run("Fourteen records over two weekdays are not enough", func(t *testing.T) {
		entries := append(onWeekday(time.Monday, 4, 7), onWeekday(time.Tuesday, 3, 7)...)
		require.Len(t, entries, 14)

		assert.Nil(t, WeekdayPatterns(entries, 90, weekdayToday))
	})

	t.Run("Fourteen records over three weekdays qualify", func(t *testing.T) {
		entries := append(onWeekday(time.Monday, 5, 5), onWeekday(time.Tuesday, 3, 5)...)
		entries = append(entries, onWeekday(time.Wednesday, 1, 4)...)
		require.Len(t, entries, 14)

		result := WeekdayPatterns(entries, 90, weekdayToday)
		require.NotNil(t, result)
		assert.Equal(t, 14, result.TotalEntries)
		assert.Len(t, result.Patterns, 3)
	})
}

func TestWeekdayPatterns_BestAndWorst(t *testing.T) {
	entries := append(onWeekday(time.Monday, 5, 5), onWeekday(time.Tuesday, 3, 5)...)
	entries = append(entries, onWeekday(time.Wednesday, 1, 4)...)

	result := WeekdayPatterns(entries, 90, weekdayToday)
	require.NotNil(t, result)

	assert.Equal(t, "Monday", result.BestDay.DayName)
	assert.Equal(t, 5.0, result.BestDay.Average)
	assert.Equal(t, 5, result.BestDay.Count)

	assert.Equal(t, "Wednesday", result.WorstDay.DayName)
	assert.Equal(t, 1.0, result.WorstDay.Average)

	t.Run("Patterns keep ascending day order", func(t *testing.T) {
		for i := 1; i < len(result.Patterns); i++ {
			assert.Greater(t, result.Patterns[i].DayIndex, result.Patterns[i-1].DayIndex)
		}
	})
}

func TestWeekdayPatterns_TieBreakByDayIndex(t *testing.T) {
	// Monday and Tuesday tie on average; the lower day index wins both ways.
	entries := append(onWeekday(time.Monday, 4, 5), onWeekday(time.Tuesday, 4, 5)...)
	entries = append(entries, onWeekday(time.Wednesday, 4, 4)...)

	result := WeekdayPatterns(entries, 90, weekdayToday)
	require.NotNil(t, result)

	assert.Equal(t, int(time.Monday), result.BestDay.DayIndex)
	assert.Equal(t, int(time.Monday), result.WorstDay.DayIndex)
}

func TestWeekdayPatterns_WindowFilter(t *testing.T) {
	// Fourteen fresh records plus a pile of ancient perfect Fridays: the old
	// ones must not leak into the aggregation.
	entries := append(onWeekday(time.Monday, 3, 5), onWeekday(time.Tuesday, 3, 5)...)
	entries = append(entries, onWeekday(time.Wednesday, 3, 4)...)

	for i := 0; i < 10; i++ {
		entries = append(entries, domain.DatedMood{
			Date: time.Date(2023, 1, 6+7*i, 0, 0, 0, 0, time.UTC),
			Mood: 5,
		})
	}

	result := WeekdayPatterns(entries, 90, weekdayToday)
	require.NotNil(t, result)
	assert.Equal(t, 14, result.TotalEntries)
	for _, p := range result.Patterns {
		assert.NotEqual(t, int(time.Friday), p.DayIndex, "2023 records are outside the window")
	}
}

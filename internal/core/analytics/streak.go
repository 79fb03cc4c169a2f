// Package analytics contains the pure mood-analytics functions: streaks,
// insight classification, weekday patterns and period aggregation. Nothing in
// here touches the clock or any I/O; the reference date is always a
// parameter, which keeps every function trivially testable.
package analytics

import (
	"time"

	"github.com/danielv14/skymning/internal/core/calendar"
	"github.com/danielv14/skymning/internal/core/domain"
)

// CurrentStreak counts the consecutive calendar days with an entry, ending
// today or yesterday. A streak survives not having journaled yet today; it
// breaks once a full day has been skipped.
//
// datesDesc must be "YYYY-MM-DD" strings sorted most-recent-first. The caller
// is responsible for bounding the window (the repositories cap the query at a
// few hundred dates); this function walks however much it is given.
func CurrentStreak(datesDesc []string, today time.Time) int {
	if len(datesDesc) == 0 {
		return 0
	}

	todayStr := calendar.FormatDate(today)
	yesterdayStr := calendar.FormatDate(calendar.AddDays(today, -1))

	latest := datesDesc[0]
	if latest != todayStr && latest != yesterdayStr {
		return 0
	}

	recorded := make(map[string]bool, len(datesDesc))
	for _, d := range datesDesc {
		recorded[d] = true
	}

	start, err := calendar.ParseDate(latest)
	if err != nil {
		return 0
	}

	streak := 0
	for day := start; recorded[calendar.FormatDate(day)]; day = calendar.AddDays(day, -1) {
		streak++
	}
	return streak
}

// ComputeStreak returns the current streak together with the longest run
// anywhere in the window.
func ComputeStreak(datesDesc []string, today time.Time) domain.StreakInfo {
	info := domain.StreakInfo{
		Current: CurrentStreak(datesDesc, today),
	}

	recorded := make(map[string]bool, len(datesDesc))
	for _, d := range datesDesc {
		recorded[d] = true
	}

	// Runs are counted from their most recent day: a day starts a run scan
	// only if the day after it has no entry.
	for d := range recorded {
		day, err := calendar.ParseDate(d)
		if err != nil {
			continue
		}
		if recorded[calendar.FormatDate(calendar.AddDays(day, 1))] {
			continue
		}

		run := 0
		for cursor := day; recorded[calendar.FormatDate(cursor)]; cursor = calendar.AddDays(cursor, -1) {
			run++
		}
		if run > info.Longest {
			info.Longest = run
		}
	}

	return info
}

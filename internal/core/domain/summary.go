package domain

import "github.com/danielv14/skymning/internal/core/calendar"

// DailyMood is one row of a period view, chronological.
type DailyMood struct {
	Date       string `json:"date"`
	Mood       int    `json:"mood"`
	Reflection string `json:"reflection,omitempty"`
}

// WeekSummary is the aggregated view of one ISO week. StartDate/EndDate are
// the half-open [start, end) range the aggregation ran over.
type WeekSummary struct {
	Week      calendar.ISOWeek `json:"week"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`

	PrevWeek calendar.ISOWeek `json:"prev_week"`
	NextWeek calendar.ISOWeek `json:"next_week"`

	Summary    PeriodSummary    `json:"summary"`
	Comparison PeriodComparison `json:"comparison"`
	Days       []DailyMood      `json:"days"`
}

// MonthSummary is the aggregated view of one calendar month, including the
// ISO weeks that touch it and the month-over-month comparison.
type MonthSummary struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	Summary    PeriodSummary      `json:"summary"`
	Comparison PeriodComparison   `json:"comparison"`
	Weeks      []calendar.ISOWeek `json:"weeks"`
	Days       []DailyMood        `json:"days"`
}

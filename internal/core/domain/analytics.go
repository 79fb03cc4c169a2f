package domain

import "time"

// Trend describes the direction of the mood average between the recent and
// older half of a window.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Stability describes how spread out the moods in a window are.
type Stability string

const (
	StabilityStable      Stability = "stable"
	StabilityFluctuating Stability = "fluctuating"
)

// MoodLevel is the discrete bucket of the window average.
type MoodLevel string

const (
	MoodLevelLow    MoodLevel = "low"
	MoodLevelMedium MoodLevel = "medium"
	MoodLevelHigh   MoodLevel = "high"
)

// DatedMood is a single (calendar day, mood) observation as handed over by
// the storage layer.
type DatedMood struct {
	Date time.Time `json:"date"`
	Mood int       `json:"mood"`
}

// StreakInfo holds the consecutive-day counters for a user. Current counts
// the run ending today or yesterday; Longest is the best run anywhere in the
// inspected window.
type StreakInfo struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// MoodInsight is the derived classification of a mood window plus the daily
// rendered message. It is recomputed on demand and never persisted; only the
// Message may be cached externally, keyed by entry count and date.
type MoodInsight struct {
	Trend      Trend     `json:"trend"`
	Stability  Stability `json:"stability"`
	Level      MoodLevel `json:"level"`
	Average    float64   `json:"average"`
	EntryCount int       `json:"entry_count"`
	Message    string    `json:"message"`
}

// WeekdayPattern is the per-day-of-week aggregate inside a trailing window.
// DayIndex follows time.Weekday: 0=Sunday .. 6=Saturday.
type WeekdayPattern struct {
	DayIndex int     `json:"day_index"`
	DayName  string  `json:"day_name"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

// WeekdayPatternResult is only produced when the window holds enough evidence
// (see analytics package gating constants); callers receive nil otherwise.
type WeekdayPatternResult struct {
	Patterns     []WeekdayPattern `json:"patterns"`
	BestDay      WeekdayPattern   `json:"best_day"`
	WorstDay     WeekdayPattern   `json:"worst_day"`
	TotalEntries int              `json:"total_entries"`
}

// PeriodSummary aggregates the moods of one date range. Average is nil for an
// empty range. Distribution counts moods 1..5 at indexes 0..4, zero-filled.
type PeriodSummary struct {
	Average      *float64 `json:"average"`
	Distribution []int    `json:"distribution"`
	EntryCount   int      `json:"entry_count"`
}

// PeriodComparison relates one period to the previous one. Delta is nil when
// either side has no data; the Trend is then neutral (stable).
type PeriodComparison struct {
	Delta *float64 `json:"delta"`
	Trend Trend    `json:"trend"`
}

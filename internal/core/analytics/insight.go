package analytics

import (
	"errors"
	"math"
	"time"

	"github.com/danielv14/skymning/internal/core/domain"
)

var ErrNotEnoughEntries = errors.New("not enough entries for a mood insight")

// Product-tuned thresholds. These are deliberately kept as named constants
// and not re-derived: changing any of them changes user-visible behavior.
const (
	// MinInsightEntries is the smallest window Classify accepts.
	MinInsightEntries = 4

	// TrendThreshold is the recent-vs-older average delta beyond which the
	// trend stops being "stable". Exclusive on both sides: exactly +-0.3 is
	// still stable.
	TrendThreshold = 0.3

	// StabilityThreshold is the population standard deviation at or above
	// which the window counts as "fluctuating".
	StabilityThreshold = 0.8

	// Level boundaries, inclusive at the lower end.
	LevelHighMin   = 3.5
	LevelMediumMin = 2.5
)

// Classify derives a MoodInsight from a window of moods ordered
// most-recent-first. Callers with fewer than MinInsightEntries moods should
// treat ErrNotEnoughEntries as "no insight yet", not as a failure.
//
// The reference date only feeds message selection: the same inputs on the
// same calendar day always render the same message, so the text stays put
// across re-renders within a day but rotates day to day.
func Classify(moods []int, today time.Time) (*domain.MoodInsight, error) {
	if len(moods) < MinInsightEntries {
		return nil, ErrNotEnoughEntries
	}

	half := len(moods) / 2
	recentAvg := mean(moods[:half])
	olderAvg := mean(moods[half:])
	totalAvg := mean(moods)

	trend := domain.TrendStable
	switch delta := recentAvg - olderAvg; {
	case delta > TrendThreshold:
		trend = domain.TrendImproving
	case delta < -TrendThreshold:
		trend = domain.TrendDeclining
	}

	stability := domain.StabilityStable
	if stddev(moods) >= StabilityThreshold {
		stability = domain.StabilityFluctuating
	}

	level := domain.MoodLevelLow
	switch {
	case totalAvg >= LevelHighMin:
		level = domain.MoodLevelHigh
	case totalAvg >= LevelMediumMin:
		level = domain.MoodLevelMedium
	}

	return &domain.MoodInsight{
		Trend:      trend,
		Stability:  stability,
		Level:      level,
		Average:    totalAvg,
		EntryCount: len(moods),
		Message:    renderMessage(trend, level, stability, totalAvg, len(moods), today.YearDay()),
	}, nil
}

func mean(moods []int) float64 {
	if len(moods) == 0 {
		return 0
	}
	sum := 0
	for _, m := range moods {
		sum += m
	}
	return float64(sum) / float64(len(moods))
}

// stddev is the population standard deviation. Below two samples the spread
// is defined as zero.
func stddev(moods []int) float64 {
	if len(moods) < 2 {
		return 0
	}
	avg := mean(moods)
	var sumSq float64
	for _, m := range moods {
		d := float64(m) - avg
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(moods)))
}

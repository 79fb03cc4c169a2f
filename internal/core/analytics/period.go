package analytics

import "github.com/danielv14/skymning/internal/core/domain"

// PeriodTrendThreshold is the average delta beyond which a period-over-period
// comparison stops being "stable". Narrower than the insight's TrendThreshold
// on purpose: month-to-month averages move more smoothly than a rolling
// half-window split.
const PeriodTrendThreshold = 0.15

// Summarize aggregates the moods of one period. An empty period yields a nil
// average and a zero-filled distribution, never a division by zero.
func Summarize(moods []int) domain.PeriodSummary {
	summary := domain.PeriodSummary{
		Distribution: make([]int, 5),
		EntryCount:   len(moods),
	}

	for _, m := range moods {
		if m >= 1 && m <= 5 {
			summary.Distribution[m-1]++
		}
	}

	if len(moods) > 0 {
		avg := mean(moods)
		summary.Average = &avg
	}
	return summary
}

// Compare relates the current period to the previous one. When either side
// has no data there is nothing to compare: nil delta, neutral trend.
func Compare(current, previous domain.PeriodSummary) domain.PeriodComparison {
	if current.Average == nil || previous.Average == nil {
		return domain.PeriodComparison{Trend: domain.TrendStable}
	}

	delta := *current.Average - *previous.Average

	trend := domain.TrendStable
	switch {
	case delta > PeriodTrendThreshold:
		trend = domain.TrendImproving
	case delta < -PeriodTrendThreshold:
		trend = domain.TrendDeclining
	}

	return domain.PeriodComparison{Delta: &delta, Trend: trend}
}

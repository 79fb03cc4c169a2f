package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentStreak(t *testing.T) {
	today := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		dates []string
		today time.Time
		want  int
	}{
		{
			name:  "Empty input",
			dates: []string{},
			today: today,
			want:  0,
		},
		{
			name:  "Three consecutive days ending today",
			dates: []string{"2024-06-12", "2024-06-11", "2024-06-10"},
			today: today,
			want:  3,
		},
		{
			name:  "Same records but today is two days later",
			dates: []string{"2024-06-12", "2024-06-11", "2024-06-10"},
			today: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "Latest entry yesterday keeps the streak alive",
			dates: []string{"2024-06-11", "2024-06-10", "2024-06-09"},
			today: today,
			want:  3,
		},
		{
			name:  "Gap inside the run stops the walk",
			dates: []string{"2024-06-12", "2024-06-11", "2024-06-09", "2024-06-08"},
			today: today,
			want:  2,
		},
		{
			name:  "Single entry today",
			dates: []string{"2024-06-12"},
			today: today,
			want:  1,
		},
		{
			name:  "Duplicate dates count once",
			dates: []string{"2024-06-12", "2024-06-12", "2024-06-11"},
			today: today,
			want:  2,
		},
		{
			name:  "Streak crosses a month boundary",
			dates: []string{"2024-06-01", "2024-05-31", "2024-05-30"},
			today: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStreak(tt.dates, tt.today))
		})
	}
}

func TestComputeStreak_Longest(t *testing.T) {
	today := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	t.Run("Longest run lives in the past", func(t *testing.T) {
		dates := []string{
			"2024-06-12",
			"2024-06-02", "2024-06-01", "2024-05-31", "2024-05-30",
		}
		info := ComputeStreak(dates, today)
		assert.Equal(t, 1, info.Current)
		assert.Equal(t, 4, info.Longest)
	})

	t.Run("Current run is also the longest", func(t *testing.T) {
		dates := []string{"2024-06-12", "2024-06-11", "2024-06-10"}
		info := ComputeStreak(dates, today)
		assert.Equal(t, 3, info.Current)
		assert.Equal(t, 3, info.Longest)
	})

	t.Run("Empty window", func(t *testing.T) {
		info := ComputeStreak(nil, today)
		assert.Equal(t, 0, info.Current)
		assert.Equal(t, 0, info.Longest)
	})
}

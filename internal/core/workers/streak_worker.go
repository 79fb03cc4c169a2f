package workers

import (
	"context"
	"log"
	"time"

	"github.com/danielv14/skymning/internal/core/analytics"
)

// streakWindow bounds the recent-dates query the worker walks. Anything
// beyond roughly a year of consecutive days cannot change the current
// streak, so the query cost stays flat regardless of journal size.
const streakWindow = 400

type UserRepository interface {
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type EntryRepository interface {
	RecentEntryDates(ctx context.Context, userID string, limit int) ([]string, error)
}

type StreakJob struct {
	UserID string
}

// StreakWorker recomputes the materialized streak counters on the user row
// after every entry write or delete. The HTTP path never waits for it; a
// dropped job just means the counters catch up on the next write.
type StreakWorker struct {
	userRepo  UserRepository
	entryRepo EntryRepository
	jobs      chan StreakJob
	now       func() time.Time
}

func NewStreakWorker(uRepo UserRepository, eRepo EntryRepository) *StreakWorker {
	return &StreakWorker{
		userRepo:  uRepo,
		entryRepo: eRepo,
		jobs:      make(chan StreakJob, 100),
		now:       time.Now,
	}
}

// WithClock fixes the worker's notion of "today" for tests.
func (w *StreakWorker) WithClock(clock func() time.Time) *StreakWorker {
	w.now = clock
	return w
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Streak worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(userID string) {
	select {
	case w.jobs <- StreakJob{UserID: userID}:
	default:
		log.Printf("Streak worker queue full! Dropping job for user %s", userID)
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	dates, err := w.entryRepo.RecentEntryDates(ctx, job.UserID, streakWindow)
	if err != nil {
		log.Printf("Worker error fetching entry dates for %s: %v", job.UserID, err)
		return
	}

	info := analytics.ComputeStreak(dates, w.now())

	if err := w.userRepo.UpdateStreaks(ctx, job.UserID, info.Current, info.Longest); err != nil {
		log.Printf("Worker failed to update streaks for %s: %v", job.UserID, err)
		return
	}

	log.Printf("Streaks updated for %s: Current=%d, Longest=%d", job.UserID, info.Current, info.Longest)
}

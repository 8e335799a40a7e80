package workers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/metrics"
	"github.com/comitanigiacomo/lifeboard/internal/logging"
	"github.com/comitanigiacomo/lifeboard/internal/telemetry"
)

const queueSize = 100

type HabitRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type LogRepository interface {
	List(ctx context.Context, filter domain.HabitLogFilter) ([]*domain.HabitLog, error)
}

type StreakJob struct {
	HabitID string
}

// StreakWorker keeps the persisted current/longest streak columns in sync
// with the habit's logs. Jobs are processed one at a time in the background.
type StreakWorker struct {
	habitRepo HabitRepository
	logRepo   LogRepository
	jobs      chan StreakJob
	today     func() time.Time
	log       zerolog.Logger
}

func NewStreakWorker(hRepo HabitRepository, lRepo LogRepository, loc *time.Location) *StreakWorker {
	if loc == nil {
		loc = time.UTC
	}
	return &StreakWorker{
		habitRepo: hRepo,
		logRepo:   lRepo,
		jobs:      make(chan StreakJob, queueSize),
		today:     func() time.Time { return domain.Today(loc) },
		log:       logging.Component("streak_worker"),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		w.log.Info().Msg("streak worker started")
		for {
			select {
			case job := <-w.jobs:
				telemetry.StreakQueueDepth.Set(float64(len(w.jobs)))
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.log.Info().Msg("streak worker shutting down")
				return
			}
		}
	}()
}

// Enqueue never blocks. When the queue is full the job is dropped; the next
// log mutation for the habit schedules a fresh one. A nil worker is a no-op.
func (w *StreakWorker) Enqueue(habitID string) {
	if w == nil {
		return
	}
	select {
	case w.jobs <- StreakJob{HabitID: habitID}:
		telemetry.StreakQueueDepth.Set(float64(len(w.jobs)))
	default:
		telemetry.StreakJobsTotal.WithLabelValues("dropped").Inc()
		w.log.Warn().Str("habit_id", habitID).Msg("streak queue full, dropping job")
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	habit, err := w.habitRepo.GetByID(ctx, job.HabitID)
	if err != nil {
		telemetry.StreakJobsTotal.WithLabelValues("failed").Inc()
		w.log.Error().Err(err).Str("habit_id", job.HabitID).Msg("fetching habit")
		return
	}

	logs, err := w.logRepo.List(ctx, domain.HabitLogFilter{HabitIDs: []string{job.HabitID}})
	if err != nil {
		telemetry.StreakJobsTotal.WithLabelValues("failed").Inc()
		w.log.Error().Err(err).Str("habit_id", job.HabitID).Msg("fetching logs")
		return
	}

	current, longest := calculateStreaks(job.HabitID, logs, w.today())

	if habit.CurrentStreak == current && habit.LongestStreak == longest {
		telemetry.StreakJobsTotal.WithLabelValues("unchanged").Inc()
		return
	}

	if err := w.habitRepo.UpdateStreaks(ctx, habit.ID, current, longest); err != nil {
		telemetry.StreakJobsTotal.WithLabelValues("failed").Inc()
		w.log.Error().Err(err).Str("habit_id", job.HabitID).Msg("persisting streak")
		return
	}

	telemetry.StreakJobsTotal.WithLabelValues("updated").Inc()
	w.log.Info().
		Str("habit", habit.Name).
		Int("current", current).
		Int("longest", longest).
		Msg("streak updated")
}

func calculateStreaks(habitID string, logs []*domain.HabitLog, today time.Time) (int, int) {
	values := make([]domain.HabitLog, 0, len(logs))
	for _, l := range logs {
		values = append(values, *l)
	}
	return metrics.Streak(habitID, values, today), metrics.LongestStreak(habitID, values)
}

// Package state holds the long-lived application state consumed by
// interactive clients: the last fetched record lists plus the optimistic
// habit-log toggle.
package state

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/metrics"
	"github.com/comitanigiacomo/lifeboard/internal/logging"
	"github.com/comitanigiacomo/lifeboard/internal/telemetry"
)

const recentActivitiesLimit = 5

// Source is the record store as seen by the dashboard.
type Source interface {
	ListDays(ctx context.Context) ([]*domain.Day, error)
	ListHabits(ctx context.Context) ([]*domain.Habit, error)
	ListHabitLogs(ctx context.Context, filter domain.HabitLogFilter) ([]*domain.HabitLog, error)
	RecentActivities(ctx context.Context, limit int) ([]*domain.Activity, error)
	ListGoals(ctx context.Context, year int) ([]*domain.Goal, error)
	LatestWheel(ctx context.Context) (*domain.WheelOfLife, error)
	ToggleHabitLog(ctx context.Context, habitID string, date time.Time) (bool, error)
}

type Snapshot struct {
	LoadedAt         time.Time             `json:"loaded_at"`
	Year             int                   `json:"year"`
	Days             []domain.Day          `json:"days"`
	Habits           []domain.Habit        `json:"habits"`
	HabitLogs        []domain.HabitLog     `json:"habit_logs"`
	RecentActivities []domain.Activity     `json:"recent_activities"`
	Goals            []domain.Goal         `json:"goals"`
	Wheel            []domain.WheelScore   `json:"wheel"`
	WheelSource      metrics.WheelSource   `json:"wheel_source"`
	Categories       []domain.CategoryInfo `json:"categories"`
}

func (s Snapshot) clone() Snapshot {
	c := s
	c.Days = append([]domain.Day(nil), s.Days...)
	for i := range c.Days {
		c.Days[i].Activities = append([]domain.Activity(nil), s.Days[i].Activities...)
	}
	c.Habits = append([]domain.Habit(nil), s.Habits...)
	c.HabitLogs = append([]domain.HabitLog(nil), s.HabitLogs...)
	c.RecentActivities = append([]domain.Activity(nil), s.RecentActivities...)
	c.Goals = append([]domain.Goal(nil), s.Goals...)
	c.Wheel = append([]domain.WheelScore(nil), s.Wheel...)
	c.Categories = append([]domain.CategoryInfo(nil), s.Categories...)
	return c
}

// Dashboard replaces a global data context: callers receive it explicitly
// and every read goes through its lock.
type Dashboard struct {
	src   Source
	year  int
	today func() time.Time
	log   zerolog.Logger

	mu     sync.RWMutex
	snap   Snapshot
	loaded bool
}

func NewDashboard(src Source, year int, loc *time.Location) *Dashboard {
	return &Dashboard{
		src:   src,
		year:  year,
		today: func() time.Time { return domain.Today(loc) },
		log:   logging.Component("state"),
	}
}

func deref[T any](ptrs []*T) []T {
	out := make([]T, 0, len(ptrs))
	for _, p := range ptrs {
		out = append(out, *p)
	}
	return out
}

// Refresh reloads every list. On failure the previous snapshot stays in
// place and the error is returned after being logged.
func (d *Dashboard) Refresh(ctx context.Context) error {
	snap, err := d.load(ctx)
	if err != nil {
		telemetry.DashboardRefreshTotal.WithLabelValues("error").Inc()
		d.log.Error().Err(err).Msg("Dashboard refresh failed, keeping previous data")
		return err
	}

	d.mu.Lock()
	d.snap = snap
	d.loaded = true
	d.mu.Unlock()

	telemetry.DashboardRefreshTotal.WithLabelValues("ok").Inc()
	d.log.Debug().
		Int("habits", len(snap.Habits)).
		Int("logs", len(snap.HabitLogs)).
		Int("days", len(snap.Days)).
		Msg("Dashboard refreshed")
	return nil
}

func (d *Dashboard) load(ctx context.Context) (Snapshot, error) {
	days, err := d.src.ListDays(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	habits, err := d.src.ListHabits(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	logs, err := d.src.ListHabitLogs(ctx, domain.HabitLogFilter{})
	if err != nil {
		return Snapshot{}, err
	}
	recent, err := d.src.RecentActivities(ctx, recentActivitiesLimit)
	if err != nil {
		return Snapshot{}, err
	}
	goals, err := d.src.ListGoals(ctx, d.year)
	if err != nil {
		return Snapshot{}, err
	}
	wheel, err := d.src.LatestWheel(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		LoadedAt:         time.Now().UTC(),
		Year:             d.year,
		Days:             deref(days),
		Habits:           deref(habits),
		HabitLogs:        deref(logs),
		RecentActivities: deref(recent),
		Goals:            deref(goals),
		Categories:       domain.AllCategoryInfo(),
	}
	snap.Wheel, snap.WheelSource = metrics.ResolveWheel(wheel, snap.Goals)
	return snap, nil
}

func (d *Dashboard) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loaded
}

func (d *Dashboard) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snap.clone()
}

// setLocal writes the completion of (habitID, date) into the snapshot,
// appending a provisional log when none is loaded.
func (d *Dashboard) setLocal(habitID string, date time.Time, completed func(prev bool, found bool) bool) bool {
	key := domain.DateKey(date)
	for i := range d.snap.HabitLogs {
		l := &d.snap.HabitLogs[i]
		if l.HabitID == habitID && domain.DateKey(l.Date) == key {
			l.Completed = completed(l.Completed, true)
			return l.Completed
		}
	}

	l := domain.NewHabitLog(habitID, date)
	l.Completed = completed(false, false)
	d.snap.HabitLogs = append(d.snap.HabitLogs, *l)
	return l.Completed
}

// ToggleHabitLog flips the local value first, then asks the store to do the
// same. A failed remote toggle is logged and returned but the local flip is
// kept; a successful one overwrites the local value with the store's answer.
func (d *Dashboard) ToggleHabitLog(ctx context.Context, habitID string, date time.Time) (bool, error) {
	date = domain.NormalizeDate(date)

	d.mu.Lock()
	optimistic := d.setLocal(habitID, date, func(prev, found bool) bool { return !found || !prev })
	d.mu.Unlock()

	completed, err := d.src.ToggleHabitLog(ctx, habitID, date)
	if err != nil {
		d.log.Error().Err(err).
			Str("habit_id", habitID).
			Str("date", domain.DateKey(date)).
			Msg("Habit toggle failed, local state left as is")
		return optimistic, err
	}

	if completed != optimistic {
		d.log.Warn().
			Str("habit_id", habitID).
			Bool("local", optimistic).
			Bool("remote", completed).
			Msg("Local toggle diverged from the store")
	}

	d.mu.Lock()
	d.setLocal(habitID, date, func(bool, bool) bool { return completed })
	d.mu.Unlock()

	return completed, nil
}

func (d *Dashboard) StreakFor(habitID string, ref time.Time) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return metrics.Streak(habitID, d.snap.HabitLogs, ref)
}

type HabitSummary struct {
	Habit             domain.Habit `json:"habit"`
	Streak            int          `json:"streak"`
	WeeklyCompletions int          `json:"weekly_completions"`
	CompletedToday    bool         `json:"completed_today"`
}

type Summary struct {
	Date             string                `json:"date"`
	LoadedAt         time.Time             `json:"loaded_at"`
	Habits           []HabitSummary        `json:"habits"`
	CompletedToday   int                   `json:"completed_today"`
	BestStreak       int                   `json:"best_streak"`
	WeekEnergy       metrics.EnergySummary `json:"week_energy"`
	Goals            metrics.AnnualSummary `json:"goals"`
	Wheel            []domain.WheelScore   `json:"wheel"`
	WheelSource      metrics.WheelSource   `json:"wheel_source"`
	RecentActivities []domain.Activity     `json:"recent_activities"`
}

// Summarize derives the dashboard numbers from the loaded snapshot as of
// ref; it never touches the store.
func (d *Dashboard) Summarize(ref time.Time) Summary {
	snap := d.Snapshot()
	ref = domain.NormalizeDate(ref)

	out := Summary{
		Date:             domain.DateKey(ref),
		LoadedAt:         snap.LoadedAt,
		Habits:           make([]HabitSummary, 0, len(snap.Habits)),
		BestStreak:       metrics.BestStreak(snap.Habits, snap.HabitLogs, ref),
		WeekEnergy:       metrics.SummarizeEnergy(weekOf(snap.Days, ref)),
		Goals:            metrics.SummarizeAnnualGoals(snap.Goals, ref),
		Wheel:            snap.Wheel,
		WheelSource:      snap.WheelSource,
		RecentActivities: snap.RecentActivities,
	}

	for _, h := range snap.Habits {
		hs := HabitSummary{
			Habit:             h,
			Streak:            metrics.Streak(h.ID, snap.HabitLogs, ref),
			WeeklyCompletions: metrics.WeeklyCompletions(h.ID, snap.HabitLogs, ref),
			CompletedToday:    metrics.CompletedOn(h.ID, snap.HabitLogs, ref),
		}
		if hs.CompletedToday {
			out.CompletedToday++
		}
		out.Habits = append(out.Habits, hs)
	}

	return out
}

// weekOf keeps the days dated in [ref-6, ref].
func weekOf(days []domain.Day, ref time.Time) []domain.Day {
	from := ref.AddDate(0, 0, -6)
	out := make([]domain.Day, 0, len(days))
	for _, d := range days {
		date := domain.NormalizeDate(d.Date)
		if date.Before(from) || date.After(ref) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Today is the reference date used when a caller supplies none.
func (d *Dashboard) Today() time.Time {
	return d.today()
}

package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

var (
	_ domain.DayRepository         = (*InMemoryDayRepository)(nil)
	_ domain.ActivityRepository    = (*InMemoryActivityRepository)(nil)
	_ domain.HabitRepository       = (*InMemoryHabitRepository)(nil)
	_ domain.HabitLogRepository    = (*InMemoryHabitLogRepository)(nil)
	_ domain.GoalRepository        = (*InMemoryGoalRepository)(nil)
	_ domain.MonthlyGoalRepository = (*InMemoryMonthlyGoalRepository)(nil)
	_ domain.WheelRepository       = (*InMemoryWheelRepository)(nil)
)

// MemoryStore keeps every collection in process memory behind one lock so
// cascades (habit -> logs) stay atomic. Values are copied on the way in and
// out; callers never share pointers with the store.
type MemoryStore struct {
	mu sync.RWMutex

	days       map[string]*domain.Day
	activities map[string]*domain.Activity
	habits     map[string]*domain.Habit
	logs       map[string]*domain.HabitLog
	goals      map[string]*domain.Goal
	monthly    map[string]*domain.MonthlyGoal
	wheels     map[string]*domain.WheelOfLife
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		days:       make(map[string]*domain.Day),
		activities: make(map[string]*domain.Activity),
		habits:     make(map[string]*domain.Habit),
		logs:       make(map[string]*domain.HabitLog),
		goals:      make(map[string]*domain.Goal),
		monthly:    make(map[string]*domain.MonthlyGoal),
		wheels:     make(map[string]*domain.WheelOfLife),
	}
}

func (s *MemoryStore) Days() *InMemoryDayRepository { return &InMemoryDayRepository{s} }

func (s *MemoryStore) Activities() *InMemoryActivityRepository {
	return &InMemoryActivityRepository{s}
}

func (s *MemoryStore) Habits() *InMemoryHabitRepository { return &InMemoryHabitRepository{s} }

func (s *MemoryStore) HabitLogs() *InMemoryHabitLogRepository {
	return &InMemoryHabitLogRepository{s}
}

func (s *MemoryStore) Goals() *InMemoryGoalRepository { return &InMemoryGoalRepository{s} }

func (s *MemoryStore) MonthlyGoals() *InMemoryMonthlyGoalRepository {
	return &InMemoryMonthlyGoalRepository{s}
}

func (s *MemoryStore) Wheels() *InMemoryWheelRepository { return &InMemoryWheelRepository{s} }

func clone[T any](v *T) *T {
	c := *v
	return &c
}

type InMemoryDayRepository struct{ s *MemoryStore }

func (r *InMemoryDayRepository) Create(ctx context.Context, day *domain.Day) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := domain.DateKey(day.Date)
	for _, d := range r.s.days {
		if domain.DateKey(d.Date) == key {
			return domain.ErrDayConflict
		}
	}

	c := clone(day)
	c.Activities = nil
	r.s.days[day.ID] = c
	return nil
}

func (r *InMemoryDayRepository) GetByDate(ctx context.Context, date time.Time) (*domain.Day, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	key := domain.DateKey(date)
	for _, d := range r.s.days {
		if domain.DateKey(d.Date) == key {
			return clone(d), nil
		}
	}
	return nil, domain.ErrDayNotFound
}

func (r *InMemoryDayRepository) List(ctx context.Context) ([]*domain.Day, error) {
	days := r.filter(func(*domain.Day) bool { return true })
	sort.Slice(days, func(i, j int) bool { return days[i].Date.After(days[j].Date) })
	return days, nil
}

func (r *InMemoryDayRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Day, error) {
	lo, hi := domain.DateKey(from), domain.DateKey(to)
	days := r.filter(func(d *domain.Day) bool {
		k := domain.DateKey(d.Date)
		return k >= lo && k <= hi
	})
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}

func (r *InMemoryDayRepository) filter(keep func(*domain.Day) bool) []*domain.Day {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	days := make([]*domain.Day, 0, len(r.s.days))
	for _, d := range r.s.days {
		if keep(d) {
			days = append(days, clone(d))
		}
	}
	return days
}

type InMemoryActivityRepository struct{ s *MemoryStore }

func (r *InMemoryActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.days[a.DayID]; !ok {
		return domain.ErrDayNotFound
	}
	r.s.activities[a.ID] = clone(a)
	return nil
}

func (r *InMemoryActivityRepository) ListByDayIDs(ctx context.Context, dayIDs []string) ([]*domain.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[string]bool, len(dayIDs))
	for _, id := range dayIDs {
		wanted[id] = true
	}

	var out []*domain.Activity
	for _, a := range r.s.activities {
		if wanted[a.DayID] {
			out = append(out, clone(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Activity, 0, len(r.s.activities))
	for _, a := range r.s.activities {
		out = append(out, clone(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryActivityRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.activities[id]
	if !ok {
		return domain.ErrActivityNotFound
	}
	a.Completed = completed
	return nil
}

type InMemoryHabitRepository struct{ s *MemoryStore }

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.habits[habit.ID] = clone(habit)
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	habit, ok := r.s.habits[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	return clone(habit), nil
}

func (r *InMemoryHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	habits := make([]*domain.Habit, 0, len(r.s.habits))
	for _, h := range r.s.habits {
		habits = append(habits, clone(h))
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.habits[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}

	r.s.habits[habit.ID] = clone(habit)
	return nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.habits[id]; !ok {
		return domain.ErrHabitNotFound
	}

	delete(r.s.habits, id)
	for logID, l := range r.s.logs {
		if l.HabitID == id {
			delete(r.s.logs, logID)
		}
	}
	return nil
}

func (r *InMemoryHabitRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	habit, ok := r.s.habits[id]
	if !ok {
		return domain.ErrHabitNotFound
	}
	habit.UpdateStreak(current, longest)
	return nil
}

type InMemoryHabitLogRepository struct{ s *MemoryStore }

func (r *InMemoryHabitLogRepository) GetByHabitAndDate(ctx context.Context, habitID string, date time.Time) (*domain.HabitLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	key := domain.DateKey(date)
	for _, l := range r.s.logs {
		if l.HabitID == habitID && domain.DateKey(l.Date) == key {
			return clone(l), nil
		}
	}
	return nil, domain.ErrHabitLogNotFound
}

func (r *InMemoryHabitLogRepository) Create(ctx context.Context, log *domain.HabitLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.habits[log.HabitID]; !ok {
		return domain.ErrHabitNotFound
	}

	key := domain.DateKey(log.Date)
	for _, l := range r.s.logs {
		if l.HabitID == log.HabitID && domain.DateKey(l.Date) == key {
			return domain.ErrHabitLogConflict
		}
	}

	r.s.logs[log.ID] = clone(log)
	return nil
}

func (r *InMemoryHabitLogRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l, ok := r.s.logs[id]
	if !ok {
		return domain.ErrHabitLogNotFound
	}
	l.Completed = completed
	return nil
}

func (r *InMemoryHabitLogRepository) List(ctx context.Context, filter domain.HabitLogFilter) ([]*domain.HabitLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*domain.HabitLog{}
	for _, l := range r.s.logs {
		if filter.Matches(*l) {
			out = append(out, clone(l))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type InMemoryGoalRepository struct{ s *MemoryStore }

func (r *InMemoryGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.goals[goal.ID] = clone(goal)
	return nil
}

func (r *InMemoryGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.goals[id]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	return clone(g), nil
}

func (r *InMemoryGoalRepository) ListByYear(ctx context.Context, year int) ([]*domain.Goal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*domain.Goal{}
	for _, g := range r.s.goals {
		if g.Year == year {
			out = append(out, clone(g))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.goals[goal.ID]; !ok {
		return domain.ErrGoalNotFound
	}
	r.s.goals[goal.ID] = clone(goal)
	return nil
}

func (r *InMemoryGoalRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.goals[id]; !ok {
		return domain.ErrGoalNotFound
	}
	delete(r.s.goals, id)
	return nil
}

type InMemoryMonthlyGoalRepository struct{ s *MemoryStore }

func (r *InMemoryMonthlyGoalRepository) Create(ctx context.Context, goal *domain.MonthlyGoal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.monthly[goal.ID] = clone(goal)
	return nil
}

func (r *InMemoryMonthlyGoalRepository) GetByID(ctx context.Context, id string) (*domain.MonthlyGoal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.monthly[id]
	if !ok {
		return nil, domain.ErrMonthlyGoalNotFound
	}
	return clone(g), nil
}

func (r *InMemoryMonthlyGoalRepository) ListByMonth(ctx context.Context, month, year int) ([]*domain.MonthlyGoal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*domain.MonthlyGoal{}
	for _, g := range r.s.monthly {
		if g.Month == month && g.Year == year {
			out = append(out, clone(g))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryMonthlyGoalRepository) Update(ctx context.Context, goal *domain.MonthlyGoal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.monthly[goal.ID]; !ok {
		return domain.ErrMonthlyGoalNotFound
	}
	r.s.monthly[goal.ID] = clone(goal)
	return nil
}

type InMemoryWheelRepository struct{ s *MemoryStore }

func (r *InMemoryWheelRepository) Create(ctx context.Context, wheel *domain.WheelOfLife) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.wheels[wheel.ID] = clone(wheel)
	return nil
}

func (r *InMemoryWheelRepository) Latest(ctx context.Context) (*domain.WheelOfLife, error) {
	return r.latest(func(*domain.WheelOfLife) bool { return true })
}

func (r *InMemoryWheelRepository) LatestBetween(ctx context.Context, from, to time.Time) (*domain.WheelOfLife, error) {
	lo, hi := domain.DateKey(from), domain.DateKey(to)
	return r.latest(func(w *domain.WheelOfLife) bool {
		k := domain.DateKey(w.Date)
		return k >= lo && k <= hi
	})
}

// latest orders by date, then creation time, newest first.
func (r *InMemoryWheelRepository) latest(keep func(*domain.WheelOfLife) bool) (*domain.WheelOfLife, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var best *domain.WheelOfLife
	for _, w := range r.s.wheels {
		if !keep(w) {
			continue
		}
		if best == nil || w.Date.After(best.Date) || (w.Date.Equal(best.Date) && w.CreatedAt.After(best.CreatedAt)) {
			best = w
		}
	}
	if best == nil {
		return nil, domain.ErrWheelNotFound
	}
	return clone(best), nil
}

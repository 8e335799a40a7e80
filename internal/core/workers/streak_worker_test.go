package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHabitRepo struct {
	mu      sync.Mutex
	habits  map[string]*domain.Habit
	updates int
	failOn  error
}

func (r *fakeHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.habits[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	clone := *h
	return &clone, nil
}

func (r *fakeHabitRepo) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn != nil {
		return r.failOn
	}
	r.updates++
	r.habits[id].UpdateStreak(current, longest)
	return nil
}

func (r *fakeHabitRepo) get(id string) domain.Habit {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.habits[id]
}

type fakeLogRepo struct {
	logs []*domain.HabitLog
	err  error
}

func (r *fakeLogRepo) List(ctx context.Context, filter domain.HabitLogFilter) ([]*domain.HabitLog, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.HabitLog
	for _, l := range r.logs {
		if filter.Matches(*l) {
			out = append(out, l)
		}
	}
	return out, nil
}

var today = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func logsOn(habitID string, offsets ...int) []*domain.HabitLog {
	var logs []*domain.HabitLog
	for _, n := range offsets {
		logs = append(logs, &domain.HabitLog{HabitID: habitID, Date: today.AddDate(0, 0, -n), Completed: true})
	}
	return logs
}

func TestCalculateStreaks(t *testing.T) {
	tests := []struct {
		name        string
		logs        []*domain.HabitLog
		wantCurrent int
		wantLongest int
	}{
		{"Empty logs", nil, 0, 0},
		{"Single log today", logsOn("h1", 0), 1, 1},
		{"Yesterday keeps the streak alive", logsOn("h1", 1), 1, 1},
		{"Two days ago breaks it", logsOn("h1", 2), 0, 1},
		{"Perfect streak", logsOn("h1", 0, 1, 2), 3, 3},
		{"Gap after yesterday", logsOn("h1", 0, 1, 4), 2, 2},
		{"Longest streak in the past", logsOn("h1", 0, 10, 11, 12), 1, 3},
		{"Unsorted logs", logsOn("h1", 2, 0, 1), 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCurrent, gotLongest := calculateStreaks("h1", tt.logs, today)
			assert.Equal(t, tt.wantCurrent, gotCurrent, "current streak mismatch")
			assert.Equal(t, tt.wantLongest, gotLongest, "longest streak mismatch")
		})
	}
}

func newTestWorker(hRepo *fakeHabitRepo, lRepo *fakeLogRepo) *StreakWorker {
	w := NewStreakWorker(hRepo, lRepo, time.UTC)
	w.today = func() time.Time { return today }
	return w
}

func TestStreakWorker_ProcessJob(t *testing.T) {
	t.Run("Success: Persists changed streaks", func(t *testing.T) {
		hRepo := &fakeHabitRepo{habits: map[string]*domain.Habit{"h1": {ID: "h1", Name: "Run"}}}
		lRepo := &fakeLogRepo{logs: append(logsOn("h1", 0, 1), logsOn("h2", 0, 1, 2, 3)...)}
		w := newTestWorker(hRepo, lRepo)

		w.processJob(context.Background(), StreakJob{HabitID: "h1"})

		h := hRepo.get("h1")
		assert.Equal(t, 2, h.CurrentStreak)
		assert.Equal(t, 2, h.LongestStreak)
		assert.Equal(t, 1, hRepo.updates)
	})

	t.Run("Success: Skips the write when nothing changed", func(t *testing.T) {
		hRepo := &fakeHabitRepo{habits: map[string]*domain.Habit{"h1": {ID: "h1", CurrentStreak: 2, LongestStreak: 2}}}
		w := newTestWorker(hRepo, &fakeLogRepo{logs: logsOn("h1", 0, 1)})

		w.processJob(context.Background(), StreakJob{HabitID: "h1"})

		assert.Equal(t, 0, hRepo.updates)
	})

	t.Run("Fail: Missing habit and log errors are swallowed", func(t *testing.T) {
		hRepo := &fakeHabitRepo{habits: map[string]*domain.Habit{"h1": {ID: "h1"}}}
		w := newTestWorker(hRepo, &fakeLogRepo{err: errors.New("db down")})

		assert.NotPanics(t, func() {
			w.processJob(context.Background(), StreakJob{HabitID: "missing"})
			w.processJob(context.Background(), StreakJob{HabitID: "h1"})
		})
		assert.Equal(t, 0, hRepo.updates)
	})
}

func TestStreakWorker_Start(t *testing.T) {
	hRepo := &fakeHabitRepo{habits: map[string]*domain.Habit{"h1": {ID: "h1"}}}
	w := newTestWorker(hRepo, &fakeLogRepo{logs: logsOn("h1", 0, 1, 2)})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	w.Enqueue("h1")

	require.Eventually(t, func() bool {
		return hRepo.get("h1").CurrentStreak == 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStreakWorker_Enqueue(t *testing.T) {
	t.Run("Success: Full queue drops instead of blocking", func(t *testing.T) {
		w := newTestWorker(&fakeHabitRepo{}, &fakeLogRepo{})

		for i := 0; i < queueSize+10; i++ {
			w.Enqueue("h1")
		}
		assert.Len(t, w.jobs, queueSize)
	})

	t.Run("Success: Nil worker is a no-op", func(t *testing.T) {
		var w *StreakWorker
		assert.NotPanics(t, func() { w.Enqueue("h1") })
	})
}

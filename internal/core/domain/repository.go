package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrHabitNotFound       = errors.New("habit not found")
	ErrHabitLogNotFound    = errors.New("habit log not found")
	ErrHabitLogConflict    = errors.New("habit log already exists for this date")
	ErrDayNotFound         = errors.New("day not found")
	ErrDayConflict         = errors.New("a day already exists for this date")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrMonthlyGoalNotFound = errors.New("monthly goal not found")
	ErrWheelNotFound       = errors.New("wheel of life snapshot not found")
)

type DayRepository interface {
	// Create fails with ErrDayConflict when a day already exists for the date.
	Create(ctx context.Context, day *Day) error

	GetByDate(ctx context.Context, date time.Time) (*Day, error)

	// List returns every day ordered by date descending, without activities.
	List(ctx context.Context) ([]*Day, error)

	// ListBetween returns days with from <= date <= to, ordered by date ascending.
	ListBetween(ctx context.Context, from, to time.Time) ([]*Day, error)
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error

	ListByDayIDs(ctx context.Context, dayIDs []string) ([]*Activity, error)

	// ListRecent returns the newest activities by creation time.
	ListRecent(ctx context.Context, limit int) ([]*Activity, error)

	SetCompleted(ctx context.Context, id string, completed bool) error
}

type HabitRepository interface {
	Create(ctx context.Context, habit *Habit) error

	GetByID(ctx context.Context, id string) (*Habit, error)

	// List returns every habit ordered by creation time ascending.
	List(ctx context.Context) ([]*Habit, error)

	Update(ctx context.Context, habit *Habit) error

	// Delete removes the habit together with its logs.
	Delete(ctx context.Context, id string) error

	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type HabitLogRepository interface {
	GetByHabitAndDate(ctx context.Context, habitID string, date time.Time) (*HabitLog, error)

	Create(ctx context.Context, log *HabitLog) error

	SetCompleted(ctx context.Context, id string, completed bool) error

	List(ctx context.Context, filter HabitLogFilter) ([]*HabitLog, error)
}

type GoalRepository interface {
	Create(ctx context.Context, goal *Goal) error
	GetByID(ctx context.Context, id string) (*Goal, error)
	ListByYear(ctx context.Context, year int) ([]*Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id string) error
}

type MonthlyGoalRepository interface {
	Create(ctx context.Context, goal *MonthlyGoal) error
	GetByID(ctx context.Context, id string) (*MonthlyGoal, error)
	ListByMonth(ctx context.Context, month, year int) ([]*MonthlyGoal, error)
	Update(ctx context.Context, goal *MonthlyGoal) error
}

type WheelRepository interface {
	Create(ctx context.Context, wheel *WheelOfLife) error

	// Latest returns the most recent snapshot or ErrWheelNotFound.
	Latest(ctx context.Context) (*WheelOfLife, error)

	// LatestBetween returns the most recent snapshot dated within [from, to]
	// or ErrWheelNotFound.
	LatestBetween(ctx context.Context, from, to time.Time) (*WheelOfLife, error)
}

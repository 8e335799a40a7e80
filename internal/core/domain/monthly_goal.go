package domain

import (
	"time"

	"github.com/google/uuid"
)

type GoalStatus string

const (
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusPending    GoalStatus = "pending"
	GoalStatusFailed     GoalStatus = "failed"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusCompleted, GoalStatusInProgress, GoalStatusPending, GoalStatusFailed:
		return true
	}
	return false
}

func ParseGoalStatus(s string) (GoalStatus, error) {
	st := GoalStatus(s)
	if !st.Valid() {
		return "", ErrInvalidGoalStatus
	}
	return st, nil
}

type MonthlyGoal struct {
	ID           string     `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	TargetValue  *float64   `json:"target_value" db:"target_value"`
	CurrentValue float64    `json:"current_value" db:"current_value"`
	Unit         *string    `json:"unit" db:"unit"`
	Category     *Category  `json:"category" db:"category"`
	Month        int        `json:"month" db:"month"`
	Year         int        `json:"year" db:"year"`
	Status       GoalStatus `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

func NewMonthlyGoal(in GoalInput, month, year int) (*MonthlyGoal, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	if !validYear(year) {
		return nil, ErrInvalidYear
	}
	f, err := validateGoal(in)
	if err != nil {
		return nil, err
	}

	return &MonthlyGoal{
		ID:           uuid.New().String(),
		Title:        f.title,
		TargetValue:  f.target,
		CurrentValue: f.current,
		Unit:         f.unit,
		Category:     f.category,
		Month:        month,
		Year:         year,
		Status:       GoalStatusPending,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (g *MonthlyGoal) Apply(current *float64, status *GoalStatus) error {
	if current != nil {
		if *current < 0 {
			return ErrInvalidGoalValue
		}
		g.CurrentValue = *current
	}
	if status != nil {
		if !status.Valid() {
			return ErrInvalidGoalStatus
		}
		g.Status = *status
	}
	return nil
}

// AsGoal projects the monthly goal onto the annual shape used by the wheel
// scorer.
func (g MonthlyGoal) AsGoal() Goal {
	return Goal{
		ID:           g.ID,
		Title:        g.Title,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		Category:     g.Category,
		Year:         g.Year,
		CreatedAt:    g.CreatedAt,
	}
}

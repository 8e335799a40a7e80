package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGoalTitleEmpty    = errors.New("goal title cannot be empty")
	ErrInvalidGoalTarget = errors.New("goal target must be positive")
	ErrInvalidGoalValue  = errors.New("goal current value cannot be negative")
	ErrInvalidYear       = errors.New("invalid year")
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
	ErrInvalidGoalStatus = errors.New("invalid goal status (must be completed, in_progress, pending or failed)")
)

// Goal is an annual target. TargetValue nil means a qualitative goal that is
// never measured numerically.
type Goal struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	TargetValue  *float64  `json:"target_value" db:"target_value"`
	CurrentValue float64   `json:"current_value" db:"current_value"`
	Unit         *string   `json:"unit" db:"unit"`
	Category     *Category `json:"category" db:"category"`
	Year         int       `json:"year" db:"year"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type GoalInput struct {
	Title        string
	TargetValue  *float64
	CurrentValue float64
	Unit         string
	Category     string
}

type goalFields struct {
	title    string
	target   *float64
	current  float64
	unit     *string
	category *Category
}

func validateGoal(in GoalInput) (goalFields, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return goalFields{}, ErrGoalTitleEmpty
	}
	if in.TargetValue != nil && *in.TargetValue <= 0 {
		return goalFields{}, ErrInvalidGoalTarget
	}
	if in.CurrentValue < 0 {
		return goalFields{}, ErrInvalidGoalValue
	}

	var category *Category
	if strings.TrimSpace(in.Category) != "" {
		c, err := ParseCategory(in.Category)
		if err != nil {
			return goalFields{}, err
		}
		category = &c
	}

	return goalFields{
		title:    title,
		target:   in.TargetValue,
		current:  in.CurrentValue,
		unit:     optionalString(in.Unit),
		category: category,
	}, nil
}

func validYear(year int) bool {
	return year >= 1970 && year <= 9999
}

func NewGoal(in GoalInput, year int) (*Goal, error) {
	if !validYear(year) {
		return nil, ErrInvalidYear
	}
	f, err := validateGoal(in)
	if err != nil {
		return nil, err
	}

	return &Goal{
		ID:           uuid.New().String(),
		Title:        f.title,
		TargetValue:  f.target,
		CurrentValue: f.current,
		Unit:         f.unit,
		Category:     f.category,
		Year:         year,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (g *Goal) SetProgress(current float64) error {
	if current < 0 {
		return ErrInvalidGoalValue
	}
	g.CurrentValue = current
	return nil
}

func (g *Goal) HasTarget() bool {
	return g.TargetValue != nil && *g.TargetValue > 0
}

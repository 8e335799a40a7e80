package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
	ErrInvalidTarget    = errors.New("target per week must be between 1 and 7")
)

const (
	MaxNameLen           = 100
	DefaultTargetPerWeek = 7
)

type Habit struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Category      Category  `json:"category" db:"category"`
	Emoji         *string   `json:"emoji,omitempty" db:"emoji"`
	TargetPerWeek int       `json:"target_per_week" db:"target_per_week"`
	CurrentStreak int       `json:"current_streak" db:"current_streak"`
	LongestStreak int       `json:"longest_streak" db:"longest_streak"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

func validateHabit(name string, category Category, target int) (string, int, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", 0, ErrHabitNameEmpty
	}
	if len(trimmed) > MaxNameLen {
		return "", 0, ErrHabitNameTooLong
	}

	if !category.Valid() {
		return "", 0, ErrInvalidCategory
	}

	if target == 0 {
		target = DefaultTargetPerWeek
	}
	if target < 1 || target > 7 {
		return "", 0, ErrInvalidTarget
	}

	return trimmed, target, nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func NewHabit(name string, category Category, emoji string, targetPerWeek int) (*Habit, error) {
	cleanName, target, err := validateHabit(name, category, targetPerWeek)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Habit{
		ID:            uuid.New().String(),
		Name:          cleanName,
		Category:      category,
		Emoji:         optionalString(emoji),
		TargetPerWeek: target,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (h *Habit) Update(name string, category Category, emoji string, targetPerWeek int) error {
	cleanName, target, err := validateHabit(name, category, targetPerWeek)
	if err != nil {
		return err
	}

	h.Name = cleanName
	h.Category = category
	h.Emoji = optionalString(emoji)
	h.TargetPerWeek = target
	h.UpdatedAt = time.Now().UTC()

	return nil
}

func (h *Habit) UpdateStreak(current, longest int) {
	h.CurrentStreak = current
	h.LongestStreak = longest
}

package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEnergy      = errors.New("energy level must be between 0 and 10")
	ErrActivityTitleEmpty = errors.New("activity title cannot be empty")
)

const MaxEnergyLevel = 10

type Day struct {
	ID          string     `json:"id" db:"id"`
	Date        time.Time  `json:"date" db:"date"`
	EnergyLevel int        `json:"energy_level" db:"energy_level"`
	Notes       *string    `json:"notes" db:"notes"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	Activities  []Activity `json:"activities" db:"-"`
}

type Activity struct {
	ID          string    `json:"id" db:"id"`
	DayID       string    `json:"day_id" db:"day_id"`
	Category    Category  `json:"category" db:"category"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func NewDay(date time.Time, energyLevel int, notes string) (*Day, error) {
	if energyLevel < 0 || energyLevel > MaxEnergyLevel {
		return nil, ErrInvalidEnergy
	}

	return &Day{
		ID:          uuid.New().String(),
		Date:        NormalizeDate(date),
		EnergyLevel: energyLevel,
		Notes:       optionalString(notes),
		CreatedAt:   time.Now().UTC(),
		Activities:  []Activity{},
	}, nil
}

func NewActivity(dayID string, category Category, title, description string, completed bool) (*Activity, error) {
	cleanTitle := strings.TrimSpace(title)
	if cleanTitle == "" {
		return nil, ErrActivityTitleEmpty
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	return &Activity{
		ID:          uuid.New().String(),
		DayID:       dayID,
		Category:    category,
		Title:       cleanTitle,
		Description: optionalString(description),
		Completed:   completed,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidScore = errors.New("wheel score must be between 0 and 10")

const MaxWheelScore = 10.0

// WheelOfLife is a manually recorded self-assessment. When one exists for a
// period it replaces the scores derived from goals.
type WheelOfLife struct {
	ID          string    `json:"id" db:"id"`
	Date        time.Time `json:"date" db:"date"`
	Anima       float64   `json:"anima" db:"anima"`
	Mente       float64   `json:"mente" db:"mente"`
	Cuore       float64   `json:"cuore" db:"cuore"`
	Corpo       float64   `json:"corpo" db:"corpo"`
	Abito       float64   `json:"abito" db:"abito"`
	Portafoglio float64   `json:"portafoglio" db:"portafoglio"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type WheelScore struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Value    float64  `json:"value"`
	FullMark float64  `json:"full_mark"`
}

func NewWheelOfLife(date time.Time, scores map[Category]float64) (*WheelOfLife, error) {
	for c, v := range scores {
		if !c.Valid() {
			return nil, ErrInvalidCategory
		}
		if v < 0 || v > MaxWheelScore {
			return nil, ErrInvalidScore
		}
	}

	return &WheelOfLife{
		ID:          uuid.New().String(),
		Date:        NormalizeDate(date),
		Anima:       scores[CategoryAnima],
		Mente:       scores[CategoryMente],
		Cuore:       scores[CategoryCuore],
		Corpo:       scores[CategoryCorpo],
		Abito:       scores[CategoryAbito],
		Portafoglio: scores[CategoryPortafoglio],
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (w WheelOfLife) Score(c Category) float64 {
	switch c {
	case CategoryAnima:
		return w.Anima
	case CategoryMente:
		return w.Mente
	case CategoryCuore:
		return w.Cuore
	case CategoryCorpo:
		return w.Corpo
	case CategoryAbito:
		return w.Abito
	case CategoryPortafoglio:
		return w.Portafoglio
	}
	return 0
}

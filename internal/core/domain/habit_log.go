package domain

import (
	"time"

	"github.com/google/uuid"
)

// HabitLog marks a habit as done (or explicitly not done) on a calendar date.
// A missing log and Completed=false carry the same meaning.
type HabitLog struct {
	ID        string    `json:"id" db:"id"`
	HabitID   string    `json:"habit_id" db:"habit_id"`
	Date      time.Time `json:"date" db:"date"`
	Completed bool      `json:"completed" db:"completed"`
}

func NewHabitLog(habitID string, date time.Time) *HabitLog {
	return &HabitLog{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Date:      NormalizeDate(date),
		Completed: true,
	}
}

func (l *HabitLog) Toggle() {
	l.Completed = !l.Completed
}

// HabitLogFilter narrows a log query. Zero values mean no constraint.
type HabitLogFilter struct {
	HabitIDs []string
	From     *time.Time
	To       *time.Time
}

func (f HabitLogFilter) Matches(l HabitLog) bool {
	if len(f.HabitIDs) > 0 {
		found := false
		for _, id := range f.HabitIDs {
			if id == l.HabitID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	key := DateKey(l.Date)
	if f.From != nil && key < DateKey(*f.From) {
		return false
	}
	if f.To != nil && key > DateKey(*f.To) {
		return false
	}
	return true
}

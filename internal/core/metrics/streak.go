package metrics

import (
	"time"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

// StreakLookbackDays bounds how far back Streak walks from the reference date.
const StreakLookbackDays = 60

// completionIndex maps date keys to completion for one habit. Later logs in
// the slice overwrite earlier ones for the same date.
func completionIndex(habitID string, logs []domain.HabitLog) map[string]bool {
	idx := make(map[string]bool)
	for _, l := range logs {
		if l.HabitID != habitID {
			continue
		}
		idx[domain.DateKey(l.Date)] = l.Completed
	}
	return idx
}

func anyCompleted(idx map[string]bool) bool {
	for _, done := range idx {
		if done {
			return true
		}
	}
	return false
}

// Streak counts consecutive completed days walking back from ref. An
// unlogged ref day does not break the streak; the first gap on any earlier
// day does.
func Streak(habitID string, logs []domain.HabitLog, ref time.Time) int {
	idx := completionIndex(habitID, logs)
	if !anyCompleted(idx) {
		return 0
	}

	day := domain.NormalizeDate(ref)
	streak := 0
	for i := 0; i < StreakLookbackDays; i++ {
		if idx[domain.DateKey(day.AddDate(0, 0, -i))] {
			streak++
			continue
		}
		if i > 0 {
			break
		}
	}

	return streak
}

// LongestStreak returns the longest run of consecutive completed dates in
// the whole history of the habit.
func LongestStreak(habitID string, logs []domain.HabitLog) int {
	idx := completionIndex(habitID, logs)

	longest := 0
	for key, done := range idx {
		if !done {
			continue
		}
		day, err := domain.ParseDate(key)
		if err != nil {
			continue
		}
		// only start counting at the first day of a run
		if idx[domain.DateKey(day.AddDate(0, 0, -1))] {
			continue
		}

		run := 1
		for idx[domain.DateKey(day.AddDate(0, 0, run))] {
			run++
		}
		if run > longest {
			longest = run
		}
	}

	return longest
}

// BestStreak is the highest current streak across habits.
func BestStreak(habits []domain.Habit, logs []domain.HabitLog, ref time.Time) int {
	best := 0
	for _, h := range habits {
		if s := Streak(h.ID, logs, ref); s > best {
			best = s
		}
	}
	return best
}

package metrics

import (
	"math"
	"time"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

const (
	WeeklyWindowDays    = 7
	MonthlyWindowDays   = 30
	DefaultCalendarDays = 60
	MaxCalendarDays     = 366
)

// inWindow reports whether date falls in [ref-days, ref], both ends inclusive.
func inWindow(date, ref time.Time, days int) bool {
	key := domain.DateKey(date)
	end := domain.NormalizeDate(ref)
	start := end.AddDate(0, 0, -days)
	return key >= domain.DateKey(start) && key <= domain.DateKey(end)
}

// WeeklyCompletions counts completed logs of the habit in [ref-7d, ref].
func WeeklyCompletions(habitID string, logs []domain.HabitLog, ref time.Time) int {
	count := 0
	for _, l := range logs {
		if l.HabitID == habitID && l.Completed && inWindow(l.Date, ref, WeeklyWindowDays) {
			count++
		}
	}
	return count
}

// MonthlyCompletionRate is the rounded percentage of completed logs among all
// logs of the habit in [ref-30d, ref]. No logs yields 0.
func MonthlyCompletionRate(habitID string, logs []domain.HabitLog, ref time.Time) int {
	total, completed := 0, 0
	for _, l := range logs {
		if l.HabitID != habitID || !inWindow(l.Date, ref, MonthlyWindowDays) {
			continue
		}
		total++
		if l.Completed {
			completed++
		}
	}

	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func CompletedOn(habitID string, logs []domain.HabitLog, date time.Time) bool {
	return completionIndex(habitID, logs)[domain.DateKey(date)]
}

// AverageCompletionRate averages MonthlyCompletionRate over habits, rounded
// to two decimals.
func AverageCompletionRate(habits []domain.Habit, logs []domain.HabitLog, ref time.Time) float64 {
	if len(habits) == 0 {
		return 0
	}

	sum := 0
	for _, h := range habits {
		sum += MonthlyCompletionRate(h.ID, logs, ref)
	}
	return roundTo(float64(sum)/float64(len(habits)), 2)
}

type DayMark struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// Calendar lists the completion of each of the last days dates ending at ref,
// oldest first. days <= 0 falls back to DefaultCalendarDays.
func Calendar(habitID string, logs []domain.HabitLog, ref time.Time, days int) []DayMark {
	if days <= 0 {
		days = DefaultCalendarDays
	}

	idx := completionIndex(habitID, logs)
	end := domain.NormalizeDate(ref)
	marks := make([]DayMark, 0, days)

	for current := end.AddDate(0, 0, -(days - 1)); !current.After(end); current = current.AddDate(0, 0, 1) {
		key := domain.DateKey(current)
		marks = append(marks, DayMark{Date: key, Completed: idx[key]})
	}

	return marks
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

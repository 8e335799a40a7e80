package domain

type HabitStat struct {
	HabitID           string   `json:"habit_id"`
	Name              string   `json:"name"`
	Emoji             *string  `json:"emoji,omitempty"`
	Category          Category `json:"category"`
	TargetPerWeek     int      `json:"target_per_week"`
	Streak            int      `json:"streak"`
	LongestStreak     int      `json:"longest_streak"`
	WeeklyCompletions int      `json:"weekly_completions"`
	MonthlyRate       int      `json:"monthly_rate"`
	CompletedToday    bool     `json:"completed_today"`
}

type HabitStats struct {
	Date                  string      `json:"date"`
	TotalHabits           int         `json:"total_habits"`
	CompletedToday        int         `json:"completed_today"`
	BestStreak            int         `json:"best_streak"`
	AverageCompletionRate float64     `json:"average_completion_rate"`
	Habits                []HabitStat `json:"habits"`
}

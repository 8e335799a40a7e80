package metrics_test

import (
	"testing"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyCompletions(t *testing.T) {
	tests := []struct {
		name string
		logs []domain.HabitLog
		want int
	}{
		{"Empty logs", nil, 0},
		{"Both window ends are inclusive", done("h1", 0, 7), 2},
		{"Day eight is outside", done("h1", 8), 0},
		{"Not-completed logs are not counted", append(done("h1", 1, 2), missed("h1", 3)...), 2},
		{"Future logs are outside", []domain.HabitLog{{HabitID: "h1", Date: daysAgo(-1), Completed: true}}, 0},
		{"Other habits are ignored", done("h2", 0, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, metrics.WeeklyCompletions("h1", tt.logs, ref))
		})
	}
}

func TestMonthlyCompletionRate(t *testing.T) {
	tests := []struct {
		name string
		logs []domain.HabitLog
		want int
	}{
		{"No logs is zero", nil, 0},
		{"Only logs outside the window is zero", done("h1", 31, 40), 0},
		{"All completed", done("h1", 0, 15, 30), 100},
		{"Two of three rounds to 67", append(done("h1", 1, 2), missed("h1", 3)...), 67},
		{"One of three rounds to 33", append(done("h1", 1), missed("h1", 2, 3)...), 33},
		{"None completed", missed("h1", 1, 2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := metrics.MonthlyCompletionRate("h1", tt.logs, ref)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestCompletedOn(t *testing.T) {
	logs := append(done("h1", 0), missed("h1", 1)...)

	assert.True(t, metrics.CompletedOn("h1", logs, ref))
	assert.False(t, metrics.CompletedOn("h1", logs, daysAgo(1)))
	assert.False(t, metrics.CompletedOn("h1", logs, daysAgo(2)))
	assert.False(t, metrics.CompletedOn("h2", logs, ref))
}

func TestAverageCompletionRate(t *testing.T) {
	habits := []domain.Habit{{ID: "h1"}, {ID: "h2"}, {ID: "h3"}}
	logs := append(done("h1", 1), append(done("h2", 1), missed("h2", 2)...)...)

	// h1 100, h2 50, h3 0
	assert.Equal(t, 50.0, metrics.AverageCompletionRate(habits, logs, ref))
	assert.Equal(t, 0.0, metrics.AverageCompletionRate(nil, logs, ref))
}

func TestCalendar(t *testing.T) {
	t.Run("Success: Default window ends at reference, oldest first", func(t *testing.T) {
		cal := metrics.Calendar("h1", done("h1", 0, 59, 60), ref, 0)

		require.Len(t, cal, metrics.DefaultCalendarDays)
		assert.Equal(t, domain.DateKey(daysAgo(59)), cal[0].Date)
		assert.True(t, cal[0].Completed)
		assert.Equal(t, "2026-03-10", cal[len(cal)-1].Date)
		assert.True(t, cal[len(cal)-1].Completed)
		assert.False(t, cal[1].Completed)
	})

	t.Run("Success: Custom size", func(t *testing.T) {
		cal := metrics.Calendar("h1", nil, ref, 7)
		require.Len(t, cal, 7)
		assert.Equal(t, "2026-03-04", cal[0].Date)
	})
}

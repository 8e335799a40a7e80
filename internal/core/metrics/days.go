package metrics

import "github.com/comitanigiacomo/lifeboard/internal/core/domain"

type EnergySummary struct {
	Average *float64 `json:"average"`
	Series  []int    `json:"series"`
}

// SummarizeEnergy averages the energy of days that recorded one (> 0),
// rounded to one decimal. Average is nil when no day qualifies.
func SummarizeEnergy(days []domain.Day) EnergySummary {
	series := make([]int, 0, len(days))
	sum := 0
	for _, d := range days {
		if d.EnergyLevel <= 0 {
			continue
		}
		series = append(series, d.EnergyLevel)
		sum += d.EnergyLevel
	}

	if len(series) == 0 {
		return EnergySummary{Series: series}
	}
	avg := roundTo(float64(sum)/float64(len(series)), 1)
	return EnergySummary{Average: &avg, Series: series}
}

type ActivitySummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

func SummarizeActivities(activities []domain.Activity) ActivitySummary {
	s := ActivitySummary{Total: len(activities)}
	for _, a := range activities {
		if a.Completed {
			s.Completed++
		}
	}
	return s
}

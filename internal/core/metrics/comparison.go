package metrics

import "github.com/comitanigiacomo/lifeboard/internal/core/domain"

type ComparisonPoint struct {
	Category domain.Category `json:"category"`
	Name     string          `json:"name"`
	Current  float64         `json:"current"`
	Previous float64         `json:"previous"`
}

// CompareWheels pairs each current score with the previous score of the same
// category. Categories absent from previous get 0.
func CompareWheels(current, previous []domain.WheelScore) []ComparisonPoint {
	prev := make(map[domain.Category]float64, len(previous))
	for _, s := range previous {
		prev[s.Category] = s.Value
	}

	points := make([]ComparisonPoint, 0, len(current))
	for _, s := range current {
		points = append(points, ComparisonPoint{
			Category: s.Category,
			Name:     s.Name,
			Current:  s.Value,
			Previous: prev[s.Category],
		})
	}
	return points
}

func PreviousMonth(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

func NextMonth(month, year int) (int, int) {
	if month == 12 {
		return 1, year + 1
	}
	return month + 1, year
}

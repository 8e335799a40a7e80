package metrics

import (
	"math"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

const (
	NeutralScore = 5.0
	MaxScore     = domain.MaxWheelScore
)

type WheelSource string

const (
	WheelSourceSnapshot WheelSource = "snapshot"
	WheelSourceGoals    WheelSource = "goals"
)

func newScore(c domain.Category, v float64) domain.WheelScore {
	return domain.WheelScore{
		Category: c,
		Name:     c.Info().Name,
		Value:    v,
		FullMark: MaxScore,
	}
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(v, MaxScore))
}

// goalScore maps one goal onto [0, 10]. Goals without a numeric target score
// the neutral midpoint.
func goalScore(g domain.Goal) float64 {
	if !g.HasTarget() {
		return NeutralScore
	}
	return clampScore(g.CurrentValue / *g.TargetValue * MaxScore)
}

// WheelFromGoals scores each category as the mean of its goals' scores,
// rounded to one decimal. A category without goals scores NeutralScore.
func WheelFromGoals(goals []domain.Goal) []domain.WheelScore {
	sums := make(map[domain.Category]float64)
	counts := make(map[domain.Category]int)
	for _, g := range goals {
		if g.Category == nil {
			continue
		}
		sums[*g.Category] += goalScore(g)
		counts[*g.Category]++
	}

	scores := make([]domain.WheelScore, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		if counts[c] == 0 {
			scores = append(scores, newScore(c, NeutralScore))
			continue
		}
		scores = append(scores, newScore(c, roundTo(sums[c]/float64(counts[c]), 1)))
	}
	return scores
}

func WheelFromSnapshot(s domain.WheelOfLife) []domain.WheelScore {
	scores := make([]domain.WheelScore, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		scores = append(scores, newScore(c, clampScore(s.Score(c))))
	}
	return scores
}

// ResolveWheel returns the snapshot scores when a snapshot exists and the
// goal-derived scores otherwise. The two are never blended.
func ResolveWheel(snapshot *domain.WheelOfLife, goals []domain.Goal) ([]domain.WheelScore, WheelSource) {
	if snapshot != nil {
		return WheelFromSnapshot(*snapshot), WheelSourceSnapshot
	}
	return WheelFromGoals(goals), WheelSourceGoals
}

// GoalsForWheel keeps the categorised monthly goals in annual-goal shape.
func GoalsForWheel(monthly []domain.MonthlyGoal) []domain.Goal {
	goals := make([]domain.Goal, 0, len(monthly))
	for _, g := range monthly {
		if g.Category == nil {
			continue
		}
		goals = append(goals, g.AsGoal())
	}
	return goals
}

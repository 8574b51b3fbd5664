package analytics

import (
	"math"
	"sort"

	"league-analytics/internal/model"
)

// WeekPoints is one point of the raw scoring series behind the
// points-by-week line chart.
type WeekPoints struct {
	Week     int
	EntityID string
	Points   float64
}

// PointsDistribution is the five-number summary of one entity's scores,
// backing the points box plot.
type PointsDistribution struct {
	EntityID string
	Min      float64
	Q1       float64
	Median   float64
	Q3       float64
	Max      float64
	Games    int
}

// PointsByWeek projects the filtered scoreboard onto the scoring series, in
// source row order.
func PointsByWeek(filtered []model.ScoreboardRecord) []WeekPoints {
	out := make([]WeekPoints, 0, len(filtered))
	for _, r := range filtered {
		out = append(out, WeekPoints{Week: r.Week, EntityID: r.EntityID, Points: r.Points})
	}
	return out
}

// PointsDistributions computes each selected entity's five-number scoring
// summary, in the given entity order. Entities with no filtered records are
// omitted.
func PointsDistributions(filtered []model.ScoreboardRecord, entities []string) []PointsDistribution {
	byEntity := make(map[string][]float64, len(entities))
	for _, r := range filtered {
		byEntity[r.EntityID] = append(byEntity[r.EntityID], r.Points)
	}

	out := make([]PointsDistribution, 0, len(entities))
	for _, entity := range entities {
		vals := byEntity[entity]
		if len(vals) == 0 {
			continue
		}
		sorted := make([]float64, len(vals))
		copy(sorted, vals)
		sort.Float64s(sorted)
		out = append(out, PointsDistribution{
			EntityID: entity,
			Min:      sorted[0],
			Q1:       percentileSorted(sorted, 0.25),
			Median:   percentileSorted(sorted, 0.50),
			Q3:       percentileSorted(sorted, 0.75),
			Max:      sorted[len(sorted)-1],
			Games:    len(sorted),
		})
	}
	return out
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

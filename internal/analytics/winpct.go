package analytics

import (
	"sort"

	"league-analytics/internal/model"
)

// WinPctPoint is one point of an entity's cumulative win-percentage series.
type WinPctPoint struct {
	Week     int
	EntityID string
	WinPct   float64
}

// CumulativeWinPct computes, per entity, the running win percentage over that
// entity's filtered records in ascending week order. The games-played
// denominator counts records actually present (1, 2, 3, ...), not calendar
// weeks: an entity with a bye inside the window is measured over played
// games only. Output is each entity's series concatenated in the given
// entity order; callers must not assume global week ordering across entities.
func CumulativeWinPct(filtered []model.ScoreboardRecord, entities []string) []WinPctPoint {
	byEntity := make(map[string][]model.ScoreboardRecord, len(entities))
	for _, r := range filtered {
		byEntity[r.EntityID] = append(byEntity[r.EntityID], r)
	}

	out := make([]WinPctPoint, 0, len(filtered))
	for _, entity := range entities {
		recs := byEntity[entity]
		sorted := make([]model.ScoreboardRecord, len(recs))
		copy(sorted, recs)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Week < sorted[j].Week })

		wins := 0
		for played, r := range sorted {
			if r.Won() {
				wins++
			}
			out = append(out, WinPctPoint{
				Week:     r.Week,
				EntityID: entity,
				WinPct:   float64(wins) / float64(played+1) * 100,
			})
		}
	}
	return out
}

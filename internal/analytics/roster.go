package analytics

import (
	"sort"

	"league-analytics/internal/model"
)

// PositionUsage is one (entity, roster position) count for the stacked
// usage chart.
type PositionUsage struct {
	EntityID string
	Position string
	Count    int
}

// UsageCount is a generic name/count pair used by the top-N tables.
type UsageCount struct {
	Name  string
	Count int
}

// TopPlayersLimit and TopSourceTeamsLimit are the dashboard's fixed
// truncation sizes for the two usage charts.
const (
	TopPlayersLimit     = 20
	TopSourceTeamsLimit = 15
)

// PositionUsageByEntity counts roster rows grouped by entity and position,
// sorted by entity then position.
func PositionUsageByEntity(rows []model.RosterRecord) []PositionUsage {
	type key struct{ entity, position string }
	counts := make(map[key]int)
	for _, r := range rows {
		counts[key{entity: r.EntityID, position: r.RosterPosition}]++
	}

	out := make([]PositionUsage, 0, len(counts))
	for k, n := range counts {
		out = append(out, PositionUsage{EntityID: k.entity, Position: k.position, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EntityID != out[j].EntityID {
			return out[i].EntityID < out[j].EntityID
		}
		return out[i].Position < out[j].Position
	})
	return out
}

// PositionDistribution counts roster rows by position across all selected
// entities, most used first.
func PositionDistribution(rows []model.RosterRecord) []UsageCount {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.RosterPosition]++
	}
	return sortedCounts(counts, 0)
}

// TopPlayers returns the n most frequently rostered players.
func TopPlayers(rows []model.RosterRecord, n int) []UsageCount {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.PlayerName]++
	}
	return sortedCounts(counts, n)
}

// TopSourceTeams returns the n real-world teams with the most rostered
// players. Rows without a team abbreviation are ignored.
func TopSourceTeams(rows []model.RosterRecord, n int) []UsageCount {
	counts := make(map[string]int)
	for _, r := range rows {
		if r.SourceTeamAbbr == "" {
			continue
		}
		counts[r.SourceTeamAbbr]++
	}
	return sortedCounts(counts, n)
}

// sortedCounts orders counts descending, breaking ties by name ascending so
// output is deterministic, then truncates to n entries (n <= 0 keeps all).
func sortedCounts(counts map[string]int, n int) []UsageCount {
	out := make([]UsageCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, UsageCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Package analytics is the derived-metrics engine: pure, single-pass
// transformations of the loaded tables into the aggregate tables the
// dashboard charts. Functions here never mutate their inputs and are safe to
// recompute on every selection change.
package analytics

import (
	"league-analytics/internal/model"
)

// FilterScoreboard keeps rows whose entity is selected and whose week falls
// inside the selection window. Source row order is preserved.
func FilterScoreboard(rows []model.ScoreboardRecord, sel model.Selection) []model.ScoreboardRecord {
	set := sel.EntitySet()
	out := make([]model.ScoreboardRecord, 0, len(rows))
	for _, r := range rows {
		if set[r.EntityID] && sel.InRange(r.Week) {
			out = append(out, r)
		}
	}
	return out
}

// FilterRosters is the roster-table counterpart of FilterScoreboard.
func FilterRosters(rows []model.RosterRecord, sel model.Selection) []model.RosterRecord {
	set := sel.EntitySet()
	out := make([]model.RosterRecord, 0, len(rows))
	for _, r := range rows {
		if set[r.EntityID] && sel.InRange(r.Week) {
			out = append(out, r)
		}
	}
	return out
}

package analytics

import (
	"league-analytics/internal/model"
)

// matchup builds the two scoreboard rows of one completed matchup, with the
// winner key derived from the scores.
func matchup(week int, id, a string, aPoints float64, b string, bPoints float64) []model.ScoreboardRecord {
	winner := a + ".key"
	if bPoints > aPoints {
		winner = b + ".key"
	}
	return []model.ScoreboardRecord{
		{Week: week, EntityID: a, MatchupID: id, Points: aPoints, WinnerKey: winner, TeamKey: a + ".key"},
		{Week: week, EntityID: b, MatchupID: id, Points: bPoints, WinnerKey: winner, TeamKey: b + ".key"},
	}
}

// season is the fixed two-week scenario used across the engine tests:
// Alpha beats Bravo 100-90 in week 1, Charlie beats Alpha 80-70 in week 2.
func season() []model.ScoreboardRecord {
	rows := matchup(1, "m1", "Alpha", 100, "Bravo", 90)
	rows = append(rows, matchup(2, "m2", "Charlie", 80, "Alpha", 70)...)
	return rows
}

func allThree() model.Selection {
	return model.NewSelection([]string{"Alpha", "Bravo", "Charlie"}, 1, 2)
}

package analytics

import (
	"league-analytics/internal/model"
)

// Summary holds the season metric-card values for a filtered scoreboard.
type Summary struct {
	AvgPoints float64
	MaxPoints float64

	// TopScorer is the entity that posted MaxPoints. On an exact tie the
	// first record in filtered row order wins.
	TopScorer string

	// TotalGames assumes perfectly paired data (two rows per matchup).
	TotalGames  int
	WeeksPlayed int
}

// Summarize computes the summary metrics in a single pass.
func Summarize(filtered []model.ScoreboardRecord) Summary {
	var s Summary
	if len(filtered) == 0 {
		return s
	}

	sum := 0.0
	weeks := make(map[int]bool)
	for i, r := range filtered {
		sum += r.Points
		weeks[r.Week] = true
		if i == 0 || r.Points > s.MaxPoints {
			s.MaxPoints = r.Points
			s.TopScorer = r.EntityID
		}
	}

	s.AvgPoints = sum / float64(len(filtered))
	s.TotalGames = len(filtered) / 2
	s.WeeksPlayed = len(weeks)
	return s
}

package analytics

import (
	"sort"

	"league-analytics/internal/model"
)

// Pairing is a resolved head-to-head matchup: exactly two scoreboard rows
// sharing a (week, matchup) key, both sides inside the current selection.
type Pairing struct {
	Week      int
	MatchupID string
	A         model.ScoreboardRecord
	B         model.ScoreboardRecord
}

// Matrix is the head-to-head win matrix over the selected entities.
// Wins[i][j] is how many times Entities[i] beat Entities[j]; the diagonal is
// always zero.
type Matrix struct {
	Entities []string
	Wins     [][]int
}

// HeadToHeadAvg is one directed row of the average-points table: how Team
// scored, on average, across its resolved matchups against Opponent.
type HeadToHeadAvg struct {
	Team      string
	Opponent  string
	AvgPoints float64
	Games     int
}

type pairingKey struct {
	week      int
	matchupID string
}

// ResolvePairings groups the filtered scoreboard by (week, matchup) and
// returns the groups that resolve into a head-to-head pairing, in first-seen
// order. A group resolves only when it holds exactly two rows and both
// entities are selected; everything else is skipped silently and tallied in
// the returned skip count. Skipping is the signal, not an error.
func ResolvePairings(filtered []model.ScoreboardRecord, sel model.Selection) (pairings []Pairing, skipped int) {
	groups := make(map[pairingKey][]model.ScoreboardRecord)
	order := make([]pairingKey, 0)
	for _, r := range filtered {
		key := pairingKey{week: r.Week, matchupID: r.MatchupID}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}

	set := sel.EntitySet()
	for _, key := range order {
		rows := groups[key]
		if len(rows) != 2 || !set[rows[0].EntityID] || !set[rows[1].EntityID] {
			skipped++
			continue
		}
		pairings = append(pairings, Pairing{
			Week:      key.week,
			MatchupID: key.matchupID,
			A:         rows[0],
			B:         rows[1],
		})
	}
	return pairings, skipped
}

// WinMatrix builds the pairwise win matrix over the selection. A pairing
// contributes a win only when one side scored strictly more than the other:
// an exact points tie records no winner (the pairing stays resolved for
// scoring purposes but leaves the matrix untouched).
func WinMatrix(filtered []model.ScoreboardRecord, sel model.Selection) (Matrix, int) {
	m := Matrix{
		Entities: sel.Entities,
		Wins:     make([][]int, len(sel.Entities)),
	}
	for i := range m.Wins {
		m.Wins[i] = make([]int, len(sel.Entities))
	}
	index := make(map[string]int, len(sel.Entities))
	for i, e := range sel.Entities {
		index[e] = i
	}

	pairings, skipped := ResolvePairings(filtered, sel)
	for _, p := range pairings {
		switch {
		case p.A.Points > p.B.Points:
			m.Wins[index[p.A.EntityID]][index[p.B.EntityID]]++
		case p.B.Points > p.A.Points:
			m.Wins[index[p.B.EntityID]][index[p.A.EntityID]]++
		}
	}
	return m, skipped
}

// HeadToHeadPoints averages each side's score over its resolved matchups
// against each opponent. Every pairing contributes two directed rows, one
// per side. Output is sorted by (Team, Opponent) for deterministic tables.
func HeadToHeadPoints(filtered []model.ScoreboardRecord, sel model.Selection) ([]HeadToHeadAvg, int) {
	type directed struct {
		team, opponent string
	}
	sums := make(map[directed]float64)
	counts := make(map[directed]int)

	pairings, skipped := ResolvePairings(filtered, sel)
	for _, p := range pairings {
		ab := directed{team: p.A.EntityID, opponent: p.B.EntityID}
		ba := directed{team: p.B.EntityID, opponent: p.A.EntityID}
		sums[ab] += p.A.Points
		counts[ab]++
		sums[ba] += p.B.Points
		counts[ba]++
	}

	out := make([]HeadToHeadAvg, 0, len(sums))
	for key, sum := range sums {
		out = append(out, HeadToHeadAvg{
			Team:      key.team,
			Opponent:  key.opponent,
			AvgPoints: sum / float64(counts[key]),
			Games:     counts[key],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		return out[i].Opponent < out[j].Opponent
	})
	return out, skipped
}

package model

// ScoreboardRecord is one team's result in one scheduling week.
// The two rows of a matchup share a (Week, MatchupID) pair; comparing
// WinnerKey against TeamKey tells each row whether its side won.
type ScoreboardRecord struct {
	Week      int
	EntityID  string
	MatchupID string

	Points float64

	WinnerKey string
	TeamKey   string
}

// Won reports whether this record's side won its matchup.
// Records without a recorded winner (e.g. an unplayed week) never count as wins.
func (r ScoreboardRecord) Won() bool {
	return r.WinnerKey != "" && r.WinnerKey == r.TeamKey
}

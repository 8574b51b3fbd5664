package model

// RosterRecord is one player's roster slot in one week for one entity.
type RosterRecord struct {
	Week     int
	EntityID string

	PlayerName     string
	RosterPosition string

	// SourceTeamAbbr is the player's real-world team abbreviation.
	// It is optional in the source data and may be empty.
	SourceTeamAbbr string
}

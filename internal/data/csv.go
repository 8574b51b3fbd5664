package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"league-analytics/internal/model"
)

// Source names one of the two input tables. It lets callers tell a missing
// scoreboard apart from a missing roster file.
type Source string

const (
	SourceScoreboard Source = "scoreboard"
	SourceRoster     Source = "roster"
)

// SourceError wraps any failure to load one of the two input tables.
type SourceError struct {
	Source Source
	Path   string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("load %s table from %s: %v", e.Source, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Scoreboard CSV columns. The files are pre-generated exports, so the header
// names are fixed rather than configurable.
const (
	colWeek      = "week"
	colManager   = "manager_nickname"
	colMatchupID = "matchup_id"
	colPoints    = "team_points"
	colWinnerKey = "winner_team_key"
	colTeamKey   = "team_key"
)

// Roster CSV columns.
const (
	colRosterManager  = "manager_name"
	colPlayerName     = "full_name"
	colRosterPosition = "roster_position"
	colSourceTeam     = "team_abbr"
)

// LoadScoreboardCSV reads the weekly scoreboard export. A table either loads
// fully or not at all: any unreadable file, missing column, or malformed cell
// fails the whole load with a *SourceError.
func LoadScoreboardCSV(path string) ([]model.ScoreboardRecord, error) {
	rows, header, err := readCSV(path, SourceScoreboard)
	if err != nil {
		return nil, err
	}

	idx, err := requireColumns(header, colWeek, colManager, colMatchupID, colPoints, colWinnerKey, colTeamKey)
	if err != nil {
		return nil, &SourceError{Source: SourceScoreboard, Path: path, Err: err}
	}

	out := make([]model.ScoreboardRecord, 0, len(rows))
	for i, row := range rows {
		week, err := strconv.Atoi(row[idx[colWeek]])
		if err != nil {
			return nil, &SourceError{Source: SourceScoreboard, Path: path, Err: fmt.Errorf("row %d: bad week %q", i+2, row[idx[colWeek]])}
		}
		points, err := strconv.ParseFloat(row[idx[colPoints]], 64)
		if err != nil {
			return nil, &SourceError{Source: SourceScoreboard, Path: path, Err: fmt.Errorf("row %d: bad team_points %q", i+2, row[idx[colPoints]])}
		}
		out = append(out, model.ScoreboardRecord{
			Week:      week,
			EntityID:  row[idx[colManager]],
			MatchupID: row[idx[colMatchupID]],
			Points:    points,
			WinnerKey: row[idx[colWinnerKey]],
			TeamKey:   row[idx[colTeamKey]],
		})
	}
	return out, nil
}

// LoadRosterCSV reads the weekly roster export. The team_abbr column is
// optional; every other column is required.
func LoadRosterCSV(path string) ([]model.RosterRecord, error) {
	rows, header, err := readCSV(path, SourceRoster)
	if err != nil {
		return nil, err
	}

	idx, err := requireColumns(header, colWeek, colRosterManager, colPlayerName, colRosterPosition)
	if err != nil {
		return nil, &SourceError{Source: SourceRoster, Path: path, Err: err}
	}
	teamCol, hasTeamCol := columnIndex(header, colSourceTeam)

	out := make([]model.RosterRecord, 0, len(rows))
	for i, row := range rows {
		week, err := strconv.Atoi(row[idx[colWeek]])
		if err != nil {
			return nil, &SourceError{Source: SourceRoster, Path: path, Err: fmt.Errorf("row %d: bad week %q", i+2, row[idx[colWeek]])}
		}
		rec := model.RosterRecord{
			Week:           week,
			EntityID:       row[idx[colRosterManager]],
			PlayerName:     row[idx[colPlayerName]],
			RosterPosition: row[idx[colRosterPosition]],
		}
		if hasTeamCol {
			rec.SourceTeamAbbr = row[teamCol]
		}
		out = append(out, rec)
	}
	return out, nil
}

func readCSV(path string, source Source) (rows [][]string, header []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &SourceError{Source: source, Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, &SourceError{Source: source, Path: path, Err: err}
	}
	if len(all) == 0 {
		return nil, nil, &SourceError{Source: source, Path: path, Err: fmt.Errorf("missing header row")}
	}
	return all[1:], all[0], nil
}

func requireColumns(header []string, names ...string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for _, name := range names {
		i, ok := columnIndex(header, name)
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		idx[name] = i
	}
	return idx, nil
}

func columnIndex(header []string, name string) (int, bool) {
	for i, h := range header {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

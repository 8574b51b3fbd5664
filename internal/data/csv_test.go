package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const scoreboardCSV = `week,manager_nickname,matchup_id,team_points,winner_team_key,team_key
1,Alpha,m1,100.5,alpha.key,alpha.key
1,Bravo,m1,90.25,alpha.key,bravo.key
2,Alpha,m2,70,charlie.key,alpha.key
2,Charlie,m2,80,charlie.key,charlie.key
`

const rosterCSV = `week,manager_name,full_name,roster_position,team_abbr
1,Alpha,Patrick Mahomes,QB,KC
1,Alpha,Travis Kelce,TE,KC
1,Bravo,Josh Allen,QB,BUF
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScoreboardCSV(t *testing.T) {
	path := writeFile(t, "scoreboard.csv", scoreboardCSV)

	rows, err := LoadScoreboardCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	first := rows[0]
	if first.Week != 1 || first.EntityID != "Alpha" || first.MatchupID != "m1" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.Points != 100.5 {
		t.Errorf("got points %v, want 100.5", first.Points)
	}
	if !first.Won() {
		t.Error("Alpha won matchup m1, Won() = false")
	}
	if rows[1].Won() {
		t.Error("Bravo lost matchup m1, Won() = true")
	}
}

func TestLoadRosterCSV(t *testing.T) {
	path := writeFile(t, "rosters.csv", rosterCSV)

	rows, err := LoadRosterCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].PlayerName != "Patrick Mahomes" || rows[0].SourceTeamAbbr != "KC" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
}

func TestLoadRosterCSV_OptionalTeamColumn(t *testing.T) {
	path := writeFile(t, "rosters.csv", "week,manager_name,full_name,roster_position\n1,Alpha,Josh Allen,QB\n")

	rows, err := LoadRosterCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].SourceTeamAbbr != "" {
		t.Errorf("got team abbr %q, want empty", rows[0].SourceTeamAbbr)
	}
}

func TestLoadMissingFileNamesSource(t *testing.T) {
	tests := []struct {
		name   string
		load   func(string) error
		source Source
	}{
		{
			name:   "scoreboard",
			load:   func(p string) error { _, err := LoadScoreboardCSV(p); return err },
			source: SourceScoreboard,
		},
		{
			name:   "roster",
			load:   func(p string) error { _, err := LoadRosterCSV(p); return err },
			source: SourceRoster,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.load(filepath.Join(t.TempDir(), "does-not-exist.csv"))
			if err == nil {
				t.Fatal("expected error for missing file")
			}
			var srcErr *SourceError
			if !errors.As(err, &srcErr) {
				t.Fatalf("expected *SourceError, got %T", err)
			}
			if srcErr.Source != tt.source {
				t.Errorf("got source %q, want %q", srcErr.Source, tt.source)
			}
			if !errors.Is(err, os.ErrNotExist) {
				t.Error("expected wrapped os.ErrNotExist")
			}
		})
	}
}

func TestLoadScoreboardCSV_BadCell(t *testing.T) {
	path := writeFile(t, "scoreboard.csv",
		"week,manager_nickname,matchup_id,team_points,winner_team_key,team_key\nnope,Alpha,m1,100,alpha.key,alpha.key\n")

	if _, err := LoadScoreboardCSV(path); err == nil {
		t.Fatal("expected error for malformed week cell")
	}
}

func TestLoadScoreboardCSV_MissingColumn(t *testing.T) {
	path := writeFile(t, "scoreboard.csv", "week,manager_nickname\n1,Alpha\n")

	if _, err := LoadScoreboardCSV(path); err == nil {
		t.Fatal("expected error for missing columns")
	}
}

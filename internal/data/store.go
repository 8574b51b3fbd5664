package data

import (
	"sort"
	"sync"
	"time"

	"league-analytics/internal/metrics"
	"league-analytics/internal/model"
)

// Store holds both input tables for the lifetime of the process. Each table
// is loaded independently, so a missing roster file still leaves the
// scoreboard usable (and vice versa). Tables are immutable once loaded; the
// only write is a whole-table swap inside Reload.
type Store struct {
	scoreboardPath string
	rosterPath     string

	mu            sync.RWMutex
	scoreboard    []model.ScoreboardRecord
	rosters       []model.RosterRecord
	scoreboardErr error
	rosterErr     error
	loadedAt      time.Time
}

// NewStore creates an empty store. Call Load before serving.
func NewStore(scoreboardPath, rosterPath string) *Store {
	return &Store{scoreboardPath: scoreboardPath, rosterPath: rosterPath}
}

// Load reads both CSVs from disk and swaps them in atomically. Load failures
// are recorded per source rather than returned: a degraded store (one or both
// tables absent) is a valid state, and callers read the per-table error from
// Scoreboard/Rosters. The returned errors are for startup logging.
func (s *Store) Load() (scoreboardErr, rosterErr error) {
	scoreboard, sbErr := LoadScoreboardCSV(s.scoreboardPath)
	rosters, roErr := LoadRosterCSV(s.rosterPath)

	s.mu.Lock()
	s.scoreboard = scoreboard
	s.rosters = rosters
	s.scoreboardErr = sbErr
	s.rosterErr = roErr
	s.loadedAt = time.Now()
	s.mu.Unlock()

	metrics.DatasetRows.WithLabelValues(string(SourceScoreboard)).Set(float64(len(scoreboard)))
	metrics.DatasetRows.WithLabelValues(string(SourceRoster)).Set(float64(len(rosters)))

	return sbErr, roErr
}

// Reload re-reads both files on demand. There is no implicit invalidation;
// the sources are static exports and only change when regenerated.
func (s *Store) Reload() (scoreboardErr, rosterErr error) {
	return s.Load()
}

// Scoreboard returns the scoreboard table, or the load error if the source
// could not be read.
func (s *Store) Scoreboard() ([]model.ScoreboardRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.scoreboardErr != nil {
		return nil, s.scoreboardErr
	}
	return s.scoreboard, nil
}

// Rosters returns the roster table, or the load error if the source could
// not be read.
func (s *Store) Rosters() ([]model.RosterRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rosterErr != nil {
		return nil, s.rosterErr
	}
	return s.rosters, nil
}

// LoadedAt reports when the current tables were read from disk.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Meta is league metadata derived from the loaded scoreboard: the sorted set
// of known entities and the observed week bounds. The UI uses it to populate
// the entity picker and the week slider.
type Meta struct {
	Entities []string
	WeekMin  int
	WeekMax  int
}

// Meta derives league metadata from whatever scoreboard data is loaded. A
// degraded store yields an empty Meta, not an error.
func (s *Store) Meta() Meta {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var m Meta
	seen := make(map[string]bool)
	for _, r := range s.scoreboard {
		if !seen[r.EntityID] {
			seen[r.EntityID] = true
			m.Entities = append(m.Entities, r.EntityID)
		}
		if m.WeekMin == 0 || r.Week < m.WeekMin {
			m.WeekMin = r.Week
		}
		if r.Week > m.WeekMax {
			m.WeekMax = r.Week
		}
	}
	sort.Strings(m.Entities)
	return m
}

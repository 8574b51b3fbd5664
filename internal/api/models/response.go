package models

import "time"

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code plus a human message.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// LeagueMetaResponse describes the loaded league: the selectable entities,
// the observed week bounds, and the entities the UI should pre-select.
type LeagueMetaResponse struct {
	Entities        []string `json:"entities"`
	WeekMin         int      `json:"week_min"`
	WeekMax         int      `json:"week_max"`
	DefaultEntities []string `json:"default_entities"`
}

// WeekPointsRow is one point of the points-by-week line chart.
type WeekPointsRow struct {
	Week   int     `json:"week"`
	Entity string  `json:"entity"`
	Points float64 `json:"points"`
}

type PointsByWeekResponse struct {
	Points []WeekPointsRow `json:"points"`
}

// WinPctRow is one point of an entity's cumulative win-percentage series.
type WinPctRow struct {
	Week   int     `json:"week"`
	Entity string  `json:"entity"`
	WinPct float64 `json:"win_pct"`
}

type WinPctResponse struct {
	Series []WinPctRow `json:"series"`
}

// DistributionRow is the five-number summary behind one box of the points
// distribution chart.
type DistributionRow struct {
	Entity string  `json:"entity"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Games  int     `json:"games"`
}

type DistributionResponse struct {
	Distributions []DistributionRow `json:"distributions"`
}

// PositionUsageRow is one (entity, position) count of the stacked bar chart.
type PositionUsageRow struct {
	Entity   string `json:"entity"`
	Position string `json:"position"`
	Count    int    `json:"count"`
}

type PositionUsageResponse struct {
	Usage []PositionUsageRow `json:"usage"`
}

// CountRow is a generic name/count pair for pie and top-N bar charts.
type CountRow struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type PositionDistributionResponse struct {
	Positions []CountRow `json:"positions"`
}

type TopUsageResponse struct {
	Items []CountRow `json:"items"`
	Limit int        `json:"limit"`
}

// MatrixResponse is the head-to-head heatmap: Wins[i][j] is how many times
// Entities[i] beat Entities[j].
type MatrixResponse struct {
	Entities        []string `json:"entities"`
	Wins            [][]int  `json:"wins"`
	SkippedPairings int      `json:"skipped_pairings"`
}

// HeadToHeadRow is one directed average of the grouped-bar scoring chart.
type HeadToHeadRow struct {
	Team      string  `json:"team"`
	Opponent  string  `json:"opponent"`
	AvgPoints float64 `json:"avg_points"`
	Games     int     `json:"games"`
}

type HeadToHeadResponse struct {
	Averages        []HeadToHeadRow `json:"averages"`
	SkippedPairings int             `json:"skipped_pairings"`
}

// SummaryResponse carries the season metric-card values.
type SummaryResponse struct {
	AvgPoints   float64 `json:"avg_points"`
	MaxPoints   float64 `json:"max_points"`
	TopScorer   string  `json:"top_scorer"`
	TotalGames  int     `json:"total_games"`
	WeeksPlayed int     `json:"weeks_played"`
}

// ReloadResponse reports the outcome of an explicit dataset re-load.
type ReloadResponse struct {
	Status         string            `json:"status"`
	LoadedAt       time.Time         `json:"loaded_at"`
	ScoreboardRows int               `json:"scoreboard_rows"`
	RosterRows     int               `json:"roster_rows"`
	SourceErrors   map[string]string `json:"source_errors,omitempty"`
}

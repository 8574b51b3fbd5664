package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"league-analytics/internal/api/models"
	"league-analytics/internal/config"
	"league-analytics/internal/data"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const scoreboardFixture = `week,manager_nickname,matchup_id,team_points,winner_team_key,team_key
1,Alpha,m1,100.5,alpha.key,alpha.key
1,Bravo,m1,90.25,alpha.key,bravo.key
2,Alpha,m2,70,charlie.key,alpha.key
2,Charlie,m2,80,charlie.key,charlie.key
`

const rosterFixture = `week,manager_name,full_name,roster_position,team_abbr
1,Alpha,Patrick Mahomes,QB,KC
1,Alpha,Travis Kelce,TE,KC
1,Bravo,Josh Allen,QB,BUF
2,Alpha,Patrick Mahomes,QB,KC
`

// newTestRouter builds a router over temp CSV fixtures. Empty content means
// the file is absent, exercising the degraded path.
func newTestRouter(t *testing.T, scoreboard, roster string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	scoreboardPath := filepath.Join(dir, "scoreboard.csv")
	rosterPath := filepath.Join(dir, "rosters.csv")
	if scoreboard != "" {
		if err := os.WriteFile(scoreboardPath, []byte(scoreboard), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if roster != "" {
		if err := os.WriteFile(rosterPath, []byte(roster), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	store := data.NewStore(scoreboardPath, rosterPath)
	store.Load()

	cfg := config.Default()
	cfg.Dashboard.DefaultEntityCount = 2
	h := New(store, cfg, zap.NewNop())

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/league/meta", h.GetLeagueMeta)
	api.POST("/reload", h.Reload)
	api.GET("/performance/points", h.GetPointsByWeek)
	api.GET("/performance/winpct", h.GetWinPct)
	api.GET("/performance/distribution", h.GetPointsDistribution)
	api.GET("/rosters/positions", h.GetPositionUsage)
	api.GET("/rosters/positions/overall", h.GetPositionDistribution)
	api.GET("/rosters/players/top", h.GetTopPlayers)
	api.GET("/rosters/teams/top", h.GetTopSourceTeams)
	api.GET("/headtohead/matrix", h.GetWinMatrix)
	api.GET("/headtohead/points", h.GetHeadToHeadPoints)
	api.GET("/summary", h.GetSummary)
	return router
}

func doGET(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestGetLeagueMeta(t *testing.T) {
	router := newTestRouter(t, scoreboardFixture, rosterFixture)
	w := doGET(t, router, "/api/v1/league/meta")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.LeagueMetaResponse
	decode(t, w, &resp)
	wantEntities := []string{"Alpha", "Bravo", "Charlie"}
	if len(resp.Entities) != 3 {
		t.Fatalf("entities = %v, want %v", resp.Entities, wantEntities)
	}
	for i, e := range wantEntities {
		if resp.Entities[i] != e {
			t.Errorf("entities[%d] = %q, want %q", i, resp.Entities[i], e)
		}
	}
	if resp.WeekMin != 1 || resp.WeekMax != 2 {
		t.Errorf("week bounds [%d, %d], want [1, 2]", resp.WeekMin, resp.WeekMax)
	}
	if len(resp.DefaultEntities) != 2 {
		t.Errorf("default entities = %v, want first 2", resp.DefaultEntities)
	}
}

func TestGetSummary(t *testing.T) {
	router := newTestRouter(t, scoreboardFixture, rosterFixture)
	w := doGET(t, router, "/api/v1/summary?entities=Alpha,Bravo&week_lo=1&week_hi=1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp models.SummaryResponse
	decode(t, w, &resp)
	if resp.MaxPoints != 100.5 || resp.TopScorer != "Alpha" {
		t.Errorf("top score %v by %q, want 100.5 by Alpha", resp.MaxPoints, resp.TopScorer)
	}
	if resp.TotalGames != 1 || resp.WeeksPlayed != 1 {
		t.Errorf("games/weeks = %d/%d, want 1/1", resp.TotalGames, resp.WeeksPlayed)
	}
	if want := (100.5 + 90.25) / 2; resp.AvgPoints != want {
		t.Errorf("avg = %v, want %v", resp.AvgPoints, want)
	}
}

func TestGetWinMatrix(t *testing.T) {
	router := newTestRouter(t, scoreboardFixture, rosterFixture)
	w := doGET(t, router, "/api/v1/headtohead/matrix")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp models.MatrixResponse
	decode(t, w, &resp)
	idx := map[string]int{}
	for i, e := range resp.Entities {
		idx[e] = i
	}
	if resp.Wins[idx["Alpha"]][idx["Bravo"]] != 1 {
		t.Error("Alpha should have one win over Bravo")
	}
	if resp.Wins[idx["Charlie"]][idx["Alpha"]] != 1 {
		t.Error("Charlie should have one win over Alpha")
	}
	if resp.SkippedPairings != 0 {
		t.Errorf("skipped = %d, want 0", resp.SkippedPairings)
	}
}

func TestGetWinPct(t *testing.T) {
	router := newTestRouter(t, scoreboardFixture, rosterFixture)
	w := doGET(t, router, "/api/v1/performance/winpct?entities=Alpha")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.WinPctResponse
	decode(t, w, &resp)
	if len(resp.Series) != 2 {
		t.Fatalf("series length = %d, want 2", len(resp.Series))
	}
	if resp.Series[0].WinPct != 100 || resp.Series[1].WinPct != 50 {
		t.Errorf("Alpha series = %+v, want [100, 50]", resp.Series)
	}
}

func TestGetTopPlayers(t *testing.T) {
	router := newTestRouter(t, scoreboardFixture, rosterFixture)
	w := doGET(t, router, "/api/v1/rosters/players/top")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp models.TopUsageResponse
	decode(t, w, &resp)
	if resp.Limit != 20 {
		t.Errorf("limit = %d, want 20", resp.Limit)
	}
	if len(resp.Items) == 0 || resp.Items[0].Name != "Patrick Mahomes" || resp.Items[0].Count != 2 {
		t.Errorf("items = %+v, want Patrick Mahomes first with 2", resp.Items)
	}
}

func TestDegradedRosterSource(t *testing.T) {
	router := newTestRouter(t, scoreboardFixture, "")

	// Roster endpoints answer an explicit no-data error.
	w := doGET(t, router, "/api/v1/rosters/positions")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var errResp models.ErrorResponse
	decode(t, w, &errResp)
	if errResp.Error.Code != "NO_DATA" {
		t.Errorf("code = %q, want NO_DATA", errResp.Error.Code)
	}
	if errResp.Error.Details["source"] != "roster" {
		t.Errorf("details = %v, want source=roster", errResp.Error.Details)
	}

	// Scoreboard endpoints keep working.
	if w := doGET(t, router, "/api/v1/summary"); w.Code != http.StatusOK {
		t.Errorf("summary status = %d, want 200", w.Code)
	}
}

func TestDegradedScoreboardSource(t *testing.T) {
	router := newTestRouter(t, "", rosterFixture)

	if w := doGET(t, router, "/api/v1/summary"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("summary status = %d, want 503", w.Code)
	}
	// Roster endpoints need an explicit selection since no metadata exists.
	if w := doGET(t, router, "/api/v1/rosters/players/top?entities=Alpha"); w.Code != http.StatusOK {
		t.Errorf("top players status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestInvalidSelections(t *testing.T) {
	router := newTestRouter(t, scoreboardFixture, rosterFixture)

	tests := []struct {
		name string
		path string
	}{
		{"inverted weeks", "/api/v1/summary?week_lo=3&week_hi=1"},
		{"unknown entity", "/api/v1/summary?entities=Nobody"},
		{"window beyond observed weeks", "/api/v1/summary?week_lo=50&week_hi=99"},
		{"upper bound beyond observed weeks", "/api/v1/summary?week_lo=1&week_hi=9"},
		{"lower bound below observed weeks", "/api/v1/rosters/positions?week_lo=-2&week_hi=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGET(t, router, tt.path)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var errResp models.ErrorResponse
			decode(t, w, &errResp)
			if errResp.Error.Code != "INVALID_SELECTION" {
				t.Errorf("code = %q, want INVALID_SELECTION", errResp.Error.Code)
			}
		})
	}
}

func TestReload(t *testing.T) {
	router := newTestRouter(t, scoreboardFixture, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.ReloadResponse
	decode(t, w, &resp)
	if resp.Status != "degraded" {
		t.Errorf("status = %q, want degraded (roster file absent)", resp.Status)
	}
	if resp.ScoreboardRows != 4 {
		t.Errorf("scoreboard rows = %d, want 4", resp.ScoreboardRows)
	}
	if _, ok := resp.SourceErrors["roster"]; !ok {
		t.Errorf("source errors = %v, want roster entry", resp.SourceErrors)
	}
}

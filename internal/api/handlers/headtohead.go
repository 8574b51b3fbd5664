package handlers

import (
	"net/http"

	"league-analytics/internal/analytics"
	"league-analytics/internal/api/models"
	"league-analytics/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetWinMatrix handles GET /api/v1/headtohead/matrix: the pairwise win
// heatmap (row beats column).
func (h *Handler) GetWinMatrix(c *gin.Context) {
	rows, ok := h.scoreboard(c)
	if !ok {
		return
	}
	sel, ok := h.selection(c)
	if !ok {
		return
	}
	metrics.Recomputes.WithLabelValues("matrix").Inc()

	m, skipped := analytics.WinMatrix(analytics.FilterScoreboard(rows, sel), sel)
	h.recordSkipped(skipped)

	c.JSON(http.StatusOK, models.MatrixResponse{
		Entities:        m.Entities,
		Wins:            m.Wins,
		SkippedPairings: skipped,
	})
}

// GetHeadToHeadPoints handles GET /api/v1/headtohead/points: average scoring
// per directed pairing.
func (h *Handler) GetHeadToHeadPoints(c *gin.Context) {
	rows, ok := h.scoreboard(c)
	if !ok {
		return
	}
	sel, ok := h.selection(c)
	if !ok {
		return
	}
	metrics.Recomputes.WithLabelValues("headtohead_points").Inc()

	avgs, skipped := analytics.HeadToHeadPoints(analytics.FilterScoreboard(rows, sel), sel)
	h.recordSkipped(skipped)

	out := make([]models.HeadToHeadRow, len(avgs))
	for i, a := range avgs {
		out[i] = models.HeadToHeadRow{
			Team:      a.Team,
			Opponent:  a.Opponent,
			AvgPoints: a.AvgPoints,
			Games:     a.Games,
		}
	}
	c.JSON(http.StatusOK, models.HeadToHeadResponse{Averages: out, SkippedPairings: skipped})
}

// recordSkipped tallies unresolvable pairings for diagnostics. Skipping is
// expected, so this is a counter and a debug log line, never an error.
func (h *Handler) recordSkipped(skipped int) {
	if skipped == 0 {
		return
	}
	metrics.SkippedPairings.Add(float64(skipped))
	h.log.Debug("skipped unresolvable pairings", zap.Int("count", skipped))
}

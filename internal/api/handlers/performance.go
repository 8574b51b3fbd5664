package handlers

import (
	"net/http"

	"league-analytics/internal/analytics"
	"league-analytics/internal/api/models"
	"league-analytics/internal/metrics"

	"github.com/gin-gonic/gin"
)

// GetPointsByWeek handles GET /api/v1/performance/points: the raw scoring
// series behind the points line chart.
func (h *Handler) GetPointsByWeek(c *gin.Context) {
	rows, ok := h.scoreboard(c)
	if !ok {
		return
	}
	sel, ok := h.selection(c)
	if !ok {
		return
	}
	metrics.Recomputes.WithLabelValues("points").Inc()

	series := analytics.PointsByWeek(analytics.FilterScoreboard(rows, sel))
	out := make([]models.WeekPointsRow, len(series))
	for i, p := range series {
		out[i] = models.WeekPointsRow{Week: p.Week, Entity: p.EntityID, Points: p.Points}
	}
	c.JSON(http.StatusOK, models.PointsByWeekResponse{Points: out})
}

// GetWinPct handles GET /api/v1/performance/winpct: each selected entity's
// cumulative win-percentage series.
func (h *Handler) GetWinPct(c *gin.Context) {
	rows, ok := h.scoreboard(c)
	if !ok {
		return
	}
	sel, ok := h.selection(c)
	if !ok {
		return
	}
	metrics.Recomputes.WithLabelValues("winpct").Inc()

	series := analytics.CumulativeWinPct(analytics.FilterScoreboard(rows, sel), sel.Entities)
	out := make([]models.WinPctRow, len(series))
	for i, p := range series {
		out[i] = models.WinPctRow{Week: p.Week, Entity: p.EntityID, WinPct: p.WinPct}
	}
	c.JSON(http.StatusOK, models.WinPctResponse{Series: out})
}

// GetPointsDistribution handles GET /api/v1/performance/distribution: the
// five-number scoring summary per entity (the box plot, as numbers).
func (h *Handler) GetPointsDistribution(c *gin.Context) {
	rows, ok := h.scoreboard(c)
	if !ok {
		return
	}
	sel, ok := h.selection(c)
	if !ok {
		return
	}
	metrics.Recomputes.WithLabelValues("distribution").Inc()

	dists := analytics.PointsDistributions(analytics.FilterScoreboard(rows, sel), sel.Entities)
	out := make([]models.DistributionRow, len(dists))
	for i, d := range dists {
		out[i] = models.DistributionRow{
			Entity: d.EntityID,
			Min:    d.Min,
			Q1:     d.Q1,
			Median: d.Median,
			Q3:     d.Q3,
			Max:    d.Max,
			Games:  d.Games,
		}
	}
	c.JSON(http.StatusOK, models.DistributionResponse{Distributions: out})
}

// GetSummary handles GET /api/v1/summary: the season metric cards.
func (h *Handler) GetSummary(c *gin.Context) {
	rows, ok := h.scoreboard(c)
	if !ok {
		return
	}
	sel, ok := h.selection(c)
	if !ok {
		return
	}
	metrics.Recomputes.WithLabelValues("summary").Inc()

	s := analytics.Summarize(analytics.FilterScoreboard(rows, sel))
	c.JSON(http.StatusOK, models.SummaryResponse{
		AvgPoints:   s.AvgPoints,
		MaxPoints:   s.MaxPoints,
		TopScorer:   s.TopScorer,
		TotalGames:  s.TotalGames,
		WeeksPlayed: s.WeeksPlayed,
	})
}

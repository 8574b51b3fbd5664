package handlers

import (
	"net/http"

	"league-analytics/internal/analytics"
	"league-analytics/internal/api/models"
	"league-analytics/internal/metrics"
	"league-analytics/internal/model"

	"github.com/gin-gonic/gin"
)

// filteredRosters is the shared prologue of the roster endpoints.
func (h *Handler) filteredRosters(c *gin.Context) ([]model.RosterRecord, bool) {
	rows, ok := h.rosters(c)
	if !ok {
		return nil, false
	}
	sel, ok := h.selection(c)
	if !ok {
		return nil, false
	}
	return analytics.FilterRosters(rows, sel), true
}

// GetPositionUsage handles GET /api/v1/rosters/positions: roster slot counts
// per (entity, position) for the stacked bar chart.
func (h *Handler) GetPositionUsage(c *gin.Context) {
	filtered, ok := h.filteredRosters(c)
	if !ok {
		return
	}
	metrics.Recomputes.WithLabelValues("position_usage").Inc()

	usage := analytics.PositionUsageByEntity(filtered)
	out := make([]models.PositionUsageRow, len(usage))
	for i, u := range usage {
		out[i] = models.PositionUsageRow{Entity: u.EntityID, Position: u.Position, Count: u.Count}
	}
	c.JSON(http.StatusOK, models.PositionUsageResponse{Usage: out})
}

// GetPositionDistribution handles GET /api/v1/rosters/positions/overall:
// position counts across the whole selection for the pie chart.
func (h *Handler) GetPositionDistribution(c *gin.Context) {
	filtered, ok := h.filteredRosters(c)
	if !ok {
		return
	}
	metrics.Recomputes.WithLabelValues("position_distribution").Inc()

	c.JSON(http.StatusOK, models.PositionDistributionResponse{
		Positions: toCountRows(analytics.PositionDistribution(filtered)),
	})
}

// GetTopPlayers handles GET /api/v1/rosters/players/top: the 20 most
// frequently rostered players.
func (h *Handler) GetTopPlayers(c *gin.Context) {
	filtered, ok := h.filteredRosters(c)
	if !ok {
		return
	}
	metrics.Recomputes.WithLabelValues("top_players").Inc()

	c.JSON(http.StatusOK, models.TopUsageResponse{
		Items: toCountRows(analytics.TopPlayers(filtered, analytics.TopPlayersLimit)),
		Limit: analytics.TopPlayersLimit,
	})
}

// GetTopSourceTeams handles GET /api/v1/rosters/teams/top: the 15 most
// represented real-world teams.
func (h *Handler) GetTopSourceTeams(c *gin.Context) {
	filtered, ok := h.filteredRosters(c)
	if !ok {
		return
	}
	metrics.Recomputes.WithLabelValues("top_source_teams").Inc()

	c.JSON(http.StatusOK, models.TopUsageResponse{
		Items: toCountRows(analytics.TopSourceTeams(filtered, analytics.TopSourceTeamsLimit)),
		Limit: analytics.TopSourceTeamsLimit,
	})
}

func toCountRows(counts []analytics.UsageCount) []models.CountRow {
	out := make([]models.CountRow, len(counts))
	for i, c := range counts {
		out[i] = models.CountRow{Name: c.Name, Count: c.Count}
	}
	return out
}

package handlers

import (
	"net/http"

	"league-analytics/internal/api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetLeagueMeta handles GET /api/v1/league/meta. It backs the sidebar: the
// entity picker, the week slider bounds, and the default pre-selection.
func (h *Handler) GetLeagueMeta(c *gin.Context) {
	if _, ok := h.scoreboard(c); !ok {
		return
	}
	meta := h.store.Meta()

	defaults := meta.Entities
	if n := h.cfg.Dashboard.DefaultEntityCount; n > 0 && len(defaults) > n {
		defaults = defaults[:n]
	}

	c.JSON(http.StatusOK, models.LeagueMetaResponse{
		Entities:        meta.Entities,
		WeekMin:         meta.WeekMin,
		WeekMax:         meta.WeekMax,
		DefaultEntities: defaults,
	})
}

// Reload handles POST /api/v1/reload: an explicit re-read of both source
// files. There is no implicit invalidation anywhere else.
func (h *Handler) Reload(c *gin.Context) {
	sbErr, roErr := h.store.Reload()

	sourceErrors := map[string]string{}
	if sbErr != nil {
		sourceErrors["scoreboard"] = sbErr.Error()
	}
	if roErr != nil {
		sourceErrors["roster"] = roErr.Error()
	}

	scoreboard, _ := h.store.Scoreboard()
	rosters, _ := h.store.Rosters()

	status := "ok"
	if len(sourceErrors) > 0 {
		status = "degraded"
		h.log.Warn("reload left store degraded",
			zap.Int("failed_sources", len(sourceErrors)))
	}

	resp := models.ReloadResponse{
		Status:         status,
		LoadedAt:       h.store.LoadedAt(),
		ScoreboardRows: len(scoreboard),
		RosterRows:     len(rosters),
	}
	if len(sourceErrors) > 0 {
		resp.SourceErrors = sourceErrors
	}
	c.JSON(http.StatusOK, resp)
}

// Package handlers wires the derived-metrics engine to the HTTP API. Every
// endpoint follows the same shape: bind the selection from the query string,
// validate it against league metadata, recompute the derived table from the
// in-memory sources, and answer with a response DTO.
package handlers

import (
	"fmt"
	"math"
	"net/http"

	"league-analytics/internal/api/models"
	"league-analytics/internal/config"
	"league-analytics/internal/data"
	"league-analytics/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds the loaded tables and serves all API routes.
type Handler struct {
	store *data.Store
	cfg   *config.Config
	log   *zap.Logger
}

func New(store *data.Store, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{store: store, cfg: cfg, log: logger}
}

// scoreboard fetches the scoreboard table, answering 503 when that source
// failed to load. The roster table stays available independently.
func (h *Handler) scoreboard(c *gin.Context) ([]model.ScoreboardRecord, bool) {
	rows, err := h.store.Scoreboard()
	if err != nil {
		h.noData(c, data.SourceScoreboard, err)
		return nil, false
	}
	return rows, true
}

func (h *Handler) rosters(c *gin.Context) ([]model.RosterRecord, bool) {
	rows, err := h.store.Rosters()
	if err != nil {
		h.noData(c, data.SourceRoster, err)
		return nil, false
	}
	return rows, true
}

func (h *Handler) noData(c *gin.Context, source data.Source, err error) {
	h.log.Warn("serving without data", zap.String("source", string(source)), zap.Error(err))
	c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "NO_DATA",
			Message: "The " + string(source) + " dataset is not loaded",
			Details: map[string]interface{}{"source": string(source)},
		},
	})
}

// selection binds and validates the query-string selection. Omitted entities
// default to every known entity; omitted week bounds default to the observed
// range. Unknown entities, inverted ranges, and weeks outside the observed
// bounds are client errors.
func (h *Handler) selection(c *gin.Context) (model.Selection, bool) {
	var req models.SelectionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return model.Selection{}, false
	}

	meta := h.store.Meta()

	entities := req.EntityList()
	if len(entities) == 0 {
		entities = meta.Entities
	} else if len(meta.Entities) > 0 {
		known := make(map[string]bool, len(meta.Entities))
		for _, e := range meta.Entities {
			known[e] = true
		}
		for _, e := range entities {
			if !known[e] {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: models.ErrorDetail{
						Code:    "INVALID_SELECTION",
						Message: "Unknown entity: " + e,
						Details: map[string]interface{}{"entity": e},
					},
				})
				return model.Selection{}, false
			}
		}
	}

	// Explicit week bounds must fall inside the observed range; zero means
	// the bound was omitted and defaults to the observed edge.
	if meta.WeekMax > 0 {
		for _, bound := range []int{req.WeekLo, req.WeekHi} {
			if bound != 0 && (bound < meta.WeekMin || bound > meta.WeekMax) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: models.ErrorDetail{
						Code:    "INVALID_SELECTION",
						Message: fmt.Sprintf("week %d outside observed range %d-%d", bound, meta.WeekMin, meta.WeekMax),
						Details: map[string]interface{}{
							"week_min": meta.WeekMin,
							"week_max": meta.WeekMax,
						},
					},
				})
				return model.Selection{}, false
			}
		}
	}

	lo, hi := req.WeekLo, req.WeekHi
	if lo == 0 {
		lo = meta.WeekMin
	}
	if hi == 0 {
		if meta.WeekMax > 0 {
			hi = meta.WeekMax
		} else {
			hi = math.MaxInt
		}
	}
	if lo > hi {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SELECTION",
				Message: "week_lo must not exceed week_hi",
			},
		})
		return model.Selection{}, false
	}

	return model.NewSelection(entities, lo, hi), true
}

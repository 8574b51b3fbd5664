package main

import (
	"flag"
	"fmt"
	"os"

	"league-analytics/internal/api/handlers"
	"league-analytics/internal/api/middleware"
	"league-analytics/internal/config"
	"league-analytics/internal/data"
	"league-analytics/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional; defaults + env apply without it)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Server.Env)
	defer logger.Sync()

	// Load both tables once at startup. A missing source degrades the
	// affected endpoints to an explicit no-data answer instead of failing
	// the whole process.
	store := data.NewStore(cfg.Data.ScoreboardCSV, cfg.Data.RostersCSV)
	sbErr, roErr := store.Load()
	if sbErr != nil {
		logger.Warn("scoreboard source unavailable", zap.Error(sbErr))
	}
	if roErr != nil {
		logger.Warn("roster source unavailable", zap.Error(roErr))
	}
	meta := store.Meta()
	logger.Info("datasets loaded",
		zap.Int("entities", len(meta.Entities)),
		zap.Int("week_min", meta.WeekMin),
		zap.Int("week_max", meta.WeekMax),
	)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))

	h := handlers.New(store, cfg, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	{
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
	}

	// Serve the chart SPA when a build exists next to the binary.
	staticDir := cfg.Server.StaticDir
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		logger.Info("serving static files", zap.String("dir", staticDir))
	} else {
		logger.Info("static directory not found, skipping SPA serving", zap.String("dir", staticDir))
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}

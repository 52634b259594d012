package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ArthurMoreiraS/OperlyService/internal/clock"
	"github.com/ArthurMoreiraS/OperlyService/internal/config"
	dbpkg "github.com/ArthurMoreiraS/OperlyService/internal/db"
	"github.com/ArthurMoreiraS/OperlyService/internal/jobs"
	"github.com/ArthurMoreiraS/OperlyService/internal/logger"
	"github.com/ArthurMoreiraS/OperlyService/internal/metrics"
	"github.com/ArthurMoreiraS/OperlyService/internal/middleware"
	"github.com/ArthurMoreiraS/OperlyService/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()
	defer log.Sync()

	metrics.Init(cfg.MetricsPrefix)

	db := dbpkg.NewDB(cfg)

	scheduler := cron.New()
	sweep := jobs.NewOverdueSweep(db, clock.System())
	if err := sweep.Start(scheduler); err != nil {
		log.Fatal("failed to schedule overdue sweep", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, db, cfg)

	log.Info("server starting", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

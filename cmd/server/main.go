package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"

	appservice "github.com/veilscan/veilscan/internal/application/service"
	"github.com/veilscan/veilscan/internal/config"
	"github.com/veilscan/veilscan/internal/infrastructure/monitoring"
	"github.com/veilscan/veilscan/internal/interfaces/http/handlers"
	"github.com/veilscan/veilscan/internal/interfaces/http/router"
	"github.com/veilscan/veilscan/pkg/logger"
)

var version = "dev"

func main() {
	startupLogger, _ := monitoring.NewZapLogger(&config.LogConfig{Level: "info", Format: "json"})

	loader := config.NewLoader(startupLogger)
	cfg, err := loader.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := monitoring.NewZapLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracing, err := monitoring.NewTracingManager(&cfg.Tracing)
	if err != nil {
		appLogger.Fatal(ctx, "failed to initialize tracing", err)
	}
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			appLogger.Error(context.Background(), "tracing shutdown failed", err)
		}
	}()

	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)

	reports := cache.New(cfg.Cache.ReportTTLDuration(), cfg.Cache.SweepIntervalDuration())
	assessments := appservice.NewAssessmentAppService(
		appservice.WeightsFromScoring(cfg.Scoring),
		reports,
		appLogger,
		metrics,
		tracing.Tracer("assessment"),
	)

	// Scoring overrides reload on config file changes; server and log
	// settings require a restart.
	loader.Watch(ctx, func(scoring config.ScoringConfig) {
		assessments.UpdateWeights(appservice.WeightsFromScoring(scoring))
	})

	r := router.NewRouter(
		cfg,
		appLogger,
		metrics,
		tracing.Tracer("http"),
		handlers.NewHealthHandler(version),
		handlers.NewAssessmentHandler(assessments, appLogger),
	)

	appLogger.Info(ctx, "veilscan risk service starting", logger.String("version", version))
	if err := r.Start(ctx); err != nil {
		appLogger.Fatal(context.Background(), "HTTP server failed", err)
	}
}

// Package router assembles the gin engine, the middleware chain and the HTTP
// server lifecycle.
package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/veilscan/veilscan/internal/config"
	"github.com/veilscan/veilscan/internal/infrastructure/monitoring"
	"github.com/veilscan/veilscan/internal/interfaces/http/handlers"
	"github.com/veilscan/veilscan/internal/interfaces/http/middleware"
	"github.com/veilscan/veilscan/pkg/logger"
)

// Router owns the gin engine and the HTTP server.
type Router struct {
	engine            *gin.Engine
	config            *config.Config
	log               logger.Logger
	metrics           *monitoring.Metrics
	tracer            trace.Tracer
	healthHandler     *handlers.HealthHandler
	assessmentHandler *handlers.AssessmentHandler
	server            *http.Server
}

// NewRouter creates the router.
func NewRouter(
	cfg *config.Config,
	log logger.Logger,
	metrics *monitoring.Metrics,
	tracer trace.Tracer,
	healthHandler *handlers.HealthHandler,
	assessmentHandler *handlers.AssessmentHandler,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	return &Router{
		engine:            gin.New(),
		config:            cfg,
		log:               log.WithComponent("router"),
		metrics:           metrics,
		tracer:            tracer,
		healthHandler:     healthHandler,
		assessmentHandler: assessmentHandler,
	}
}

// SetupRoutes installs the middleware chain and all routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogger(r.log))
	r.engine.Use(middleware.Observability(r.tracer, r.metrics))

	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	r.engine.GET("/health/live", r.healthHandler.LivenessCheck)
	r.engine.GET("/health/ready", r.healthHandler.ReadinessCheck)

	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if r.config.Monitoring.PprofEnabled {
		pprof.Register(r.engine)
	}

	v1 := r.engine.Group("/api/v1")
	{
		assessments := v1.Group("/assessments")
		{
			assessments.POST("", r.assessmentHandler.Assess)
			assessments.GET("/:id", r.assessmentHandler.GetReport)
		}
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":             "not_found",
			"error_description": "The requested resource was not found",
		})
	})
}

// Start runs the HTTP server until the context is canceled, then shuts it
// down gracefully within the configured timeout.
func (r *Router) Start(ctx context.Context) error {
	r.SetupRoutes()

	addr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	r.server = &http.Server{
		Addr:           addr,
		Handler:        r.engine,
		ReadTimeout:    time.Duration(r.config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(r.config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		r.log.Info(ctx, "starting HTTP server", logger.String("address", addr))
		if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	r.log.Info(context.Background(), "shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(r.config.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := r.server.Shutdown(shutdownCtx); err != nil {
		r.log.Error(context.Background(), "server forced to shut down", err)
		return err
	}

	r.log.Info(context.Background(), "HTTP server stopped")
	return <-errCh
}

// Engine exposes the gin engine for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Package service implements the application layer: request normalization,
// engine orchestration, report caching and observability around evaluations.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/veilscan/veilscan/internal/application/dto"
	"github.com/veilscan/veilscan/internal/domain/models"
	domainsvc "github.com/veilscan/veilscan/internal/domain/service"
	"github.com/veilscan/veilscan/internal/infrastructure/monitoring"
	apperrors "github.com/veilscan/veilscan/pkg/errors"
	"github.com/veilscan/veilscan/pkg/logger"
)

// AssessmentAppService orchestrates risk evaluations for the interface layer.
type AssessmentAppService interface {
	// Assess normalizes the raw evidence, evaluates it and returns the
	// stamped report. The report stays retrievable by id until its cache
	// entry expires.
	Assess(ctx context.Context, req *dto.AssessmentRequest) (*models.RiskReport, error)

	// GetReport returns a recently produced report or a not_found error.
	GetReport(ctx context.Context, id string) (*models.RiskReport, error)

	// UpdateWeights swaps in a new weighting policy. In-flight evaluations
	// keep the snapshot they started with.
	UpdateWeights(w domainsvc.Weights)
}

type assessmentAppService struct {
	mu      sync.RWMutex
	engine  *domainsvc.Engine
	reports *cache.Cache
	log     logger.Logger
	metrics *monitoring.Metrics
	tracer  trace.Tracer
	nowFn   func() time.Time
}

// Option customizes the service at construction time.
type Option func(*assessmentAppService)

// WithClock pins the evaluation clock, used by tests for reproducible
// reports.
func WithClock(nowFn func() time.Time) Option {
	return func(s *assessmentAppService) { s.nowFn = nowFn }
}

// NewAssessmentAppService creates the application service.
func NewAssessmentAppService(
	weights domainsvc.Weights,
	reports *cache.Cache,
	log logger.Logger,
	metrics *monitoring.Metrics,
	tracer trace.Tracer,
	opts ...Option,
) AssessmentAppService {
	s := &assessmentAppService{
		engine:  domainsvc.NewEngine(weights),
		reports: reports,
		log:     log.WithComponent("assessment_app_service"),
		metrics: metrics,
		tracer:  tracer,
		nowFn:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *assessmentAppService) Assess(ctx context.Context, req *dto.AssessmentRequest) (*models.RiskReport, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.evaluate")
	defer span.End()

	start := time.Now()
	now := s.nowFn()

	bundle, fallbacks := req.Normalize()
	for _, fb := range fallbacks {
		s.metrics.RecordEnumFallback(fb.Field)
		s.log.Warn(ctx, "input value replaced by fallback", logger.Fields{
			"field": fb.Field,
			"value": fb.Value,
		})
	}

	engine := s.currentEngine()

	// The two evidence streams are scored concurrently. Both calculators
	// are pure, so there is no ordering constraint between them.
	var (
		breachRisk models.BreachRisk
		socialRisk models.SocialRisk
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		breachRisk = engine.BreachCalculator().Score(bundle.Breaches, now)
		return nil
	})
	g.Go(func() error {
		socialRisk = engine.SocialCalculator().Score(bundle.Exposures)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report, err := engine.Assemble(bundle, breachRisk, socialRisk, now)
	if err != nil {
		s.metrics.RecordAssessment("none", "error", time.Since(start))
		s.log.Error(ctx, "evaluation failed", err)
		return nil, err
	}

	report.ID = uuid.NewString()
	s.reports.Set(report.ID, report, cache.DefaultExpiration)

	span.SetAttributes(
		attribute.String("assessment.id", report.ID),
		attribute.Float64("assessment.overall_score", report.OverallScore),
		attribute.Float64("assessment.breach_score", report.BreachRisk.Score),
		attribute.Float64("assessment.social_score", report.SocialRisk.Score),
		attribute.String("assessment.risk_level", string(report.RiskLevel)),
	)
	s.metrics.RecordAssessment(string(report.RiskLevel), "success", time.Since(start))
	s.log.Info(ctx, "assessment completed", logger.Fields{
		"report_id":     report.ID,
		"overall_score": report.OverallScore,
		"risk_level":    string(report.RiskLevel),
		"breach_count":  report.BreachRisk.BreachCount,
		"exposures":     report.SocialRisk.ExposureCount,
	})

	return report, nil
}

func (s *assessmentAppService) GetReport(ctx context.Context, id string) (*models.RiskReport, error) {
	if cached, ok := s.reports.Get(id); ok {
		s.metrics.ReportCacheHits.Inc()
		return cached.(*models.RiskReport), nil
	}
	s.metrics.ReportCacheMisses.Inc()
	return nil, apperrors.ErrNotFound("report " + id)
}

func (s *assessmentAppService) UpdateWeights(w domainsvc.Weights) {
	engine := domainsvc.NewEngine(w)
	s.mu.Lock()
	s.engine = engine
	s.mu.Unlock()
	s.log.Info(context.Background(), "weighting policy updated")
}

func (s *assessmentAppService) currentEngine() *domainsvc.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

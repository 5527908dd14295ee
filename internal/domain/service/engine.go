package service

import (
	"time"

	"github.com/veilscan/veilscan/internal/domain/models"
)

// Engine wires the scoring pipeline: evidence flows through the breach and
// social calculators, then privacy scoring, profile building, overall
// combination and recommendation selection. The engine is a pure function of
// the evidence bundle and the injected evaluation instant; it performs no
// I/O and holds no mutable state, so one instance serves any number of
// concurrent evaluations.
type Engine struct {
	breach      *BreachRiskCalculator
	social      *SocialExposureCalculator
	privacy     *PrivacyScoreCalculator
	profiles    *RiskProfileBuilder
	combiner    *OverallRiskCombiner
	recommender *RecommendationEngine
}

// NewEngine builds an engine from a weighting policy snapshot.
func NewEngine(w Weights) *Engine {
	return &Engine{
		breach:      NewBreachRiskCalculator(w),
		social:      NewSocialExposureCalculator(w),
		privacy:     NewPrivacyScoreCalculator(w),
		profiles:    NewRiskProfileBuilder(w),
		combiner:    NewOverallRiskCombiner(w),
		recommender: NewRecommendationEngine(w),
	}
}

// BreachCalculator exposes the breach component for callers that need to
// score streams independently.
func (e *Engine) BreachCalculator() *BreachRiskCalculator { return e.breach }

// SocialCalculator exposes the social component.
func (e *Engine) SocialCalculator() *SocialExposureCalculator { return e.social }

// Evaluate runs the full pipeline at the given evaluation instant. The only
// possible error is an invariant violation from the combiner, which signals
// a broken weighting policy rather than bad input.
func (e *Engine) Evaluate(bundle models.EvidenceBundle, now time.Time) (*models.RiskReport, error) {
	breachRisk := e.breach.Score(bundle.Breaches, now)
	socialRisk := e.social.Score(bundle.Exposures)
	return e.Assemble(bundle, breachRisk, socialRisk, now)
}

// Assemble completes an evaluation from already-computed component scores.
// Split out so the application layer can score the two evidence streams
// concurrently and still share the downstream pipeline.
func (e *Engine) Assemble(bundle models.EvidenceBundle, breachRisk models.BreachRisk, socialRisk models.SocialRisk, now time.Time) (*models.RiskReport, error) {
	recentActivity := models.RecentBreachActivity(bundle.Breaches, now)
	privacy := e.privacy.Score(breachRisk.BreachCount, bundle.Exposures, recentActivity)

	profile := e.profiles.Build(breachRisk.Score, socialRisk.Score, bundle.Breaches, bundle.Behavior)

	overall, level, err := e.combiner.Combine(breachRisk.Score, socialRisk.Score, privacy.Score)
	if err != nil {
		return nil, err
	}

	return &models.RiskReport{
		GeneratedAt:       now,
		OverallScore:      overall,
		RiskLevel:         level,
		BreachRisk:        breachRisk,
		SocialRisk:        socialRisk,
		PrivacyScore:      privacy.Score,
		PrivacyAssessment: privacy,
		Profile:           profile,
		Recommendations:   e.recommender.Recommend(profile, bundle.Exposures),
		Educational:       e.recommender.EducationalContent(profile),
		Summary:           e.combiner.Summary(overall, level, breachRisk, socialRisk),
	}, nil
}

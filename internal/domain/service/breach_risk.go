package service

import (
	"math"
	"time"

	"github.com/veilscan/veilscan/internal/domain/models"
	"github.com/veilscan/veilscan/pkg/constants"
)

// BreachRiskCalculator scores breach evidence. It is stateless and safe for
// concurrent use.
type BreachRiskCalculator struct {
	weights Weights
}

// NewBreachRiskCalculator creates a calculator bound to a weighting policy.
func NewBreachRiskCalculator(w Weights) *BreachRiskCalculator {
	return &BreachRiskCalculator{weights: w}
}

// Score computes the breach component score at the given evaluation instant.
// Each breach contributes severity weight plus data-type weights, scaled by a
// recency multiplier before summation, so the result is invariant under
// permutation of the input. The total saturates at 100.
func (c *BreachRiskCalculator) Score(breaches []models.BreachRecord, now time.Time) models.BreachRisk {
	if len(breaches) == 0 {
		return models.BreachRisk{
			Score:   0,
			Details: []models.BreachDetail{},
			Note:    "No breaches found",
		}
	}

	total := 0.0
	details := make([]models.BreachDetail, 0, len(breaches))

	for _, breach := range breaches {
		score := c.itemScore(breach, now)
		total += score

		details = append(details, models.BreachDetail{
			Name:      breach.Name,
			Score:     round1(score),
			Severity:  breach.Severity,
			DataTypes: breach.DataTypes,
		})
	}

	return models.BreachRisk{
		Score:       round1(clamp100(total)),
		BreachCount: len(breaches),
		Details:     details,
	}
}

func (c *BreachRiskCalculator) itemScore(breach models.BreachRecord, now time.Time) float64 {
	score := c.severityWeight(breach.Severity)
	for _, dataType := range breach.DataTypes {
		score += c.dataTypeWeight(dataType)
	}
	return score * c.recencyMultiplier(breach.BreachDate, now)
}

func (c *BreachRiskCalculator) severityWeight(severity constants.BreachSeverity) float64 {
	if w, ok := c.weights.Severity[severity]; ok {
		return w
	}
	return c.weights.SeverityFallback
}

func (c *BreachRiskCalculator) dataTypeWeight(dataType string) float64 {
	if w, ok := c.weights.DataTypes[dataType]; ok {
		return w
	}
	return c.weights.DataTypeFallback
}

// recencyMultiplier scales a breach contribution by elapsed time since the
// breach date. Undated breaches get a neutral multiplier.
func (c *BreachRiskCalculator) recencyMultiplier(date *time.Time, now time.Time) float64 {
	if date == nil {
		return 1.0
	}
	switch days := models.DaysSince(*date, now); {
	case days <= 30:
		return c.weights.Recency30Days
	case days <= 90:
		return c.weights.Recency90Days
	case days <= 365:
		return c.weights.Recency365Days
	default:
		return c.weights.RecencyOlder
	}
}

// clamp100 saturates a non-negative score at 100.
func clamp100(v float64) float64 {
	return math.Min(100, v)
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

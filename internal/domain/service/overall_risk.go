package service

import (
	"fmt"
	"strings"

	"github.com/veilscan/veilscan/internal/domain/models"
	"github.com/veilscan/veilscan/pkg/constants"
	"github.com/veilscan/veilscan/pkg/errors"
)

// OverallRiskCombiner merges the component scores into one overall score and
// risk-level label.
type OverallRiskCombiner struct {
	weights Weights
}

// NewOverallRiskCombiner creates a combiner bound to a weighting policy.
func NewOverallRiskCombiner(w Weights) *OverallRiskCombiner {
	return &OverallRiskCombiner{weights: w}
}

// Combine computes the weighted overall score. The privacy score is inverted
// before combination (higher privacy hygiene means lower risk). Each input
// term is already bounded to [0,100]; if the result still escapes the range
// the weighting policy itself is broken and the combiner fails loudly rather
// than clamp.
func (c *OverallRiskCombiner) Combine(breachScore, socialScore, privacyScore float64) (float64, constants.RiskLevel, error) {
	overall := breachScore*c.weights.BreachWeight +
		socialScore*c.weights.SocialWeight +
		(100-privacyScore)*c.weights.PrivacyWeight
	overall = round1(overall)

	if overall < 0 || overall > 100 {
		return 0, "", errors.ErrInvariantViolation("overall risk score", overall)
	}
	return overall, c.ClassifyRiskLevel(overall), nil
}

// ClassifyRiskLevel buckets a score into the four risk tiers. Boundaries are
// inclusive on the lower bound of each tier.
func (c *OverallRiskCombiner) ClassifyRiskLevel(score float64) constants.RiskLevel {
	switch {
	case score >= c.weights.CriticalThreshold:
		return constants.RiskLevelCritical
	case score >= c.weights.HighThreshold:
		return constants.RiskLevelHigh
	case score >= c.weights.MediumThreshold:
		return constants.RiskLevelMedium
	default:
		return constants.RiskLevelLow
	}
}

// Summary renders the human-readable report summary with key findings.
func (c *OverallRiskCombiner) Summary(score float64, level constants.RiskLevel, breachRisk models.BreachRisk, socialRisk models.SocialRisk) string {
	var base string
	switch level {
	case constants.RiskLevelCritical:
		base = fmt.Sprintf("Critical risk detected (Score: %g/100). Immediate action required to secure your digital presence.", score)
	case constants.RiskLevelHigh:
		base = fmt.Sprintf("High risk identified (Score: %g/100). Several security vulnerabilities need attention.", score)
	case constants.RiskLevelMedium:
		base = fmt.Sprintf("Moderate risk level (Score: %g/100). Some improvements recommended for better security.", score)
	default:
		base = fmt.Sprintf("Low risk detected (Score: %g/100). Your digital footprint appears relatively secure.", score)
	}

	var findings []string
	if breachRisk.BreachCount > 0 {
		findings = append(findings, fmt.Sprintf("%d data breach(es) found", breachRisk.BreachCount))
	}
	if socialRisk.ExposureCount > 0 {
		findings = append(findings, fmt.Sprintf("%d social media exposure(s) detected", socialRisk.ExposureCount))
	}
	if len(findings) > 0 {
		base += fmt.Sprintf(" Key findings: %s.", strings.Join(findings, ", "))
	}
	return base
}

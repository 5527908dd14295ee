package service

import (
	"github.com/veilscan/veilscan/internal/domain/models"
	"github.com/veilscan/veilscan/pkg/constants"
)

// PrivacyScoreCalculator derives a deduction-based privacy hygiene score.
// 100 is best; each triggered factor applies a flat, independent deduction
// and the result floors at 0.
type PrivacyScoreCalculator struct {
	weights Weights
}

// NewPrivacyScoreCalculator creates a calculator bound to a weighting policy.
func NewPrivacyScoreCalculator(w Weights) *PrivacyScoreCalculator {
	return &PrivacyScoreCalculator{weights: w}
}

// Score derives the privacy factors from the evidence and applies their
// deductions. The factor remediation lists ride along for the final report.
func (c *PrivacyScoreCalculator) Score(breachCount int, exposures []models.SocialExposureRecord, recentBreachActivity bool) models.PrivacyAssessment {
	factors := models.PrivacyFactors{
		EmailInBreaches:   breachCount > 0,
		SocialMediaPublic: len(exposures) > 0,
		RecentActivity:    recentBreachActivity,
		HighRiskExposure:  anyHighRiskExposure(exposures),
	}

	score := 100.0
	if factors.EmailInBreaches {
		score -= c.weights.DeductEmailInBreaches
	}
	if factors.SocialMediaPublic {
		score -= c.weights.DeductSocialMediaPublic
	}
	if factors.RecentActivity {
		score -= c.weights.DeductRecentActivity
	}
	if factors.HighRiskExposure {
		score -= c.weights.DeductHighRiskExposure
	}
	if score < 0 {
		score = 0
	}

	return models.PrivacyAssessment{
		Score:           score,
		Factors:         factors,
		Recommendations: privacyRecommendations(factors),
	}
}

func anyHighRiskExposure(exposures []models.SocialExposureRecord) bool {
	for _, e := range exposures {
		if e.RiskLevel == constants.ExposureRiskHigh {
			return true
		}
	}
	return false
}

// privacyRecommendations maps each triggered factor to its fixed remediation
// list.
func privacyRecommendations(factors models.PrivacyFactors) []string {
	recommendations := make([]string, 0, 12)

	if factors.EmailInBreaches {
		recommendations = append(recommendations,
			"Change passwords for all accounts associated with compromised email",
			"Enable two-factor authentication on all important accounts",
			"Consider using a password manager for unique passwords",
		)
	}
	if factors.SocialMediaPublic {
		recommendations = append(recommendations,
			"Review and tighten social media privacy settings",
			"Limit personal information visible to public",
			"Remove or restrict location sharing",
		)
	}
	if factors.RecentActivity {
		recommendations = append(recommendations,
			"Monitor accounts for suspicious activity",
			"Set up account alerts and notifications",
			"Consider credit monitoring services",
		)
	}
	if factors.HighRiskExposure {
		recommendations = append(recommendations,
			"Remove sensitive personal information from public profiles",
			"Audit third-party app permissions",
			"Review data sharing settings across platforms",
		)
	}
	return recommendations
}

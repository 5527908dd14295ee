package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veilscan/veilscan/internal/domain/models"
	"github.com/veilscan/veilscan/internal/domain/service"
	"github.com/veilscan/veilscan/pkg/constants"
)

func TestPrivacyScore_NoFindingsKeepsPerfectScore(t *testing.T) {
	calc := service.NewPrivacyScoreCalculator(service.DefaultWeights())

	assessment := calc.Score(0, nil, false)

	assert.Equal(t, 100.0, assessment.Score)
	assert.Equal(t, models.PrivacyFactors{}, assessment.Factors)
	assert.Empty(t, assessment.Recommendations)
}

func TestPrivacyScore_IndependentDeductions(t *testing.T) {
	calc := service.NewPrivacyScoreCalculator(service.DefaultWeights())
	highExposure := []models.SocialExposureRecord{{
		Platform:     "facebook",
		ExposureType: constants.ExposurePublicProfile,
		RiskLevel:    constants.ExposureRiskHigh,
	}}
	lowExposure := []models.SocialExposureRecord{{
		Platform:     "facebook",
		ExposureType: constants.ExposurePublicProfile,
		RiskLevel:    constants.ExposureRiskLow,
	}}

	cases := []struct {
		name        string
		breachCount int
		exposures   []models.SocialExposureRecord
		recent      bool
		expected    float64
	}{
		{"breaches only", 2, nil, false, 70},
		{"public social only", 0, lowExposure, false, 80},
		{"recent activity only", 1, nil, true, 45}, // breach deduction also fires
		{"high risk exposure", 0, highExposure, false, 65},
		{"everything at once floors at 10", 3, highExposure, true, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assessment := calc.Score(tc.breachCount, tc.exposures, tc.recent)
			assert.Equal(t, tc.expected, assessment.Score)
		})
	}
}

func TestPrivacyScore_FloorsAtZero(t *testing.T) {
	// Deductions larger than 100 must saturate, not go negative.
	w := service.DefaultWeights()
	w.DeductEmailInBreaches = 60
	w.DeductSocialMediaPublic = 60
	calc := service.NewPrivacyScoreCalculator(w)

	exposures := []models.SocialExposureRecord{{
		Platform:     "x",
		ExposureType: constants.ExposurePublicProfile,
		RiskLevel:    constants.ExposureRiskLow,
	}}

	assert.Equal(t, 0.0, calc.Score(1, exposures, false).Score)
}

func TestPrivacyScore_RecommendationsFollowFactors(t *testing.T) {
	calc := service.NewPrivacyScoreCalculator(service.DefaultWeights())

	assessment := calc.Score(1, nil, true)

	assert.True(t, assessment.Factors.EmailInBreaches)
	assert.True(t, assessment.Factors.RecentActivity)
	assert.False(t, assessment.Factors.SocialMediaPublic)
	assert.Contains(t, assessment.Recommendations, "Change passwords for all accounts associated with compromised email")
	assert.Contains(t, assessment.Recommendations, "Monitor accounts for suspicious activity")
	assert.NotContains(t, assessment.Recommendations, "Review and tighten social media privacy settings")
}

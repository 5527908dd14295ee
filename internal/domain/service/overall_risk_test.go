package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilscan/veilscan/internal/domain/models"
	"github.com/veilscan/veilscan/internal/domain/service"
	"github.com/veilscan/veilscan/pkg/constants"
	"github.com/veilscan/veilscan/pkg/errors"
)

func TestCombine_WeightedFormula(t *testing.T) {
	combiner := service.NewOverallRiskCombiner(service.DefaultWeights())

	// 0.5*60 + 0.3*40 + 0.2*(100-70) = 30 + 12 + 6 = 48
	overall, level, err := combiner.Combine(60, 40, 70)

	require.NoError(t, err)
	assert.Equal(t, 48.0, overall)
	assert.Equal(t, constants.RiskLevelMedium, level)
}

func TestCombine_PerfectPrivacyContributesNothing(t *testing.T) {
	combiner := service.NewOverallRiskCombiner(service.DefaultWeights())

	overall, level, err := combiner.Combine(0, 0, 100)

	require.NoError(t, err)
	assert.Equal(t, 0.0, overall)
	assert.Equal(t, constants.RiskLevelLow, level)
}

func TestClassifyRiskLevel_InclusiveLowerBounds(t *testing.T) {
	combiner := service.NewOverallRiskCombiner(service.DefaultWeights())

	cases := []struct {
		score    float64
		expected constants.RiskLevel
	}{
		{0, constants.RiskLevelLow},
		{39.9, constants.RiskLevelLow},
		{40.0, constants.RiskLevelMedium},
		{59.9, constants.RiskLevelMedium},
		{60.0, constants.RiskLevelHigh},
		{79.9, constants.RiskLevelHigh},
		{80.0, constants.RiskLevelCritical},
		{100, constants.RiskLevelCritical},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, combiner.ClassifyRiskLevel(tc.score), "score %.1f", tc.score)
	}
}

func TestCombine_InvariantViolationFailsLoudly(t *testing.T) {
	// A broken weighting policy must surface as an error, not a silent clamp.
	w := service.DefaultWeights()
	w.BreachWeight = 2.0
	combiner := service.NewOverallRiskCombiner(w)

	_, _, err := combiner.Combine(100, 0, 100)

	require.Error(t, err)
	appErr := errors.AsAppError(err)
	assert.Equal(t, errors.ErrCodeInvariantViolation, appErr.Code)
}

func TestSummary_IncludesKeyFindings(t *testing.T) {
	combiner := service.NewOverallRiskCombiner(service.DefaultWeights())
	breachRisk := models.BreachRisk{Score: 70, BreachCount: 2}
	socialRisk := models.SocialRisk{Score: 30, ExposureCount: 1}

	summary := combiner.Summary(61.0, constants.RiskLevelHigh, breachRisk, socialRisk)

	assert.Contains(t, summary, "High risk identified (Score: 61/100)")
	assert.Contains(t, summary, "2 data breach(es) found")
	assert.Contains(t, summary, "1 social media exposure(s) detected")
}

func TestSummary_QuietFootprintSkipsFindings(t *testing.T) {
	combiner := service.NewOverallRiskCombiner(service.DefaultWeights())

	summary := combiner.Summary(0, constants.RiskLevelLow, models.BreachRisk{}, models.SocialRisk{})

	assert.Contains(t, summary, "Low risk detected")
	assert.NotContains(t, summary, "Key findings")
}

package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veilscan/veilscan/internal/domain/models"
	"github.com/veilscan/veilscan/internal/domain/service"
	"github.com/veilscan/veilscan/pkg/constants"
)

func TestRecommend_QuietProfileHasNoImmediateActions(t *testing.T) {
	engine := service.NewRecommendationEngine(service.DefaultWeights())
	profile := models.RiskProfile{UrgencyLevel: constants.UrgencyLow}

	set := engine.Recommend(profile, nil)

	assert.Empty(t, set.ImmediateActions)
	assert.NotEmpty(t, set.LongTermImprovements)
	assert.NotEmpty(t, set.EducationalResources)
}

func TestRecommend_FinancialDataUnderHighUrgency(t *testing.T) {
	engine := service.NewRecommendationEngine(service.DefaultWeights())
	profile := models.RiskProfile{
		UrgencyLevel:    constants.UrgencyHigh,
		DataSensitivity: models.DataSensitivityFlags{FinancialData: true},
	}

	set := engine.Recommend(profile, nil)

	assert.Contains(t, set.ImmediateActions, "URGENT: Monitor all bank and credit card accounts for unauthorized transactions")
}

func TestRecommend_FinancialActionsNeedUrgency(t *testing.T) {
	engine := service.NewRecommendationEngine(service.DefaultWeights())
	profile := models.RiskProfile{
		UrgencyLevel:    constants.UrgencyMedium,
		DataSensitivity: models.DataSensitivityFlags{FinancialData: true},
	}

	set := engine.Recommend(profile, nil)

	assert.Empty(t, set.ImmediateActions)
}

func TestRecommend_AuthenticationDataAlwaysImmediate(t *testing.T) {
	engine := service.NewRecommendationEngine(service.DefaultWeights())
	profile := models.RiskProfile{
		UrgencyLevel:    constants.UrgencyLow,
		DataSensitivity: models.DataSensitivityFlags{AuthenticationData: true},
	}

	set := engine.Recommend(profile, nil)

	assert.Contains(t, set.ImmediateActions, "Enable two-factor authentication on every account that supports it")
}

func TestRecommend_PasswordTrackBranchesOnReuse(t *testing.T) {
	engine := service.NewRecommendationEngine(service.DefaultWeights())

	reuse := engine.Recommend(models.RiskProfile{
		UrgencyLevel:       constants.UrgencyLow,
		BehavioralPatterns: models.BehavioralPatternFlags{PasswordReuseLikely: true},
	}, nil)
	noReuse := engine.Recommend(models.RiskProfile{
		UrgencyLevel: constants.UrgencyLow,
	}, nil)
	conscious := engine.Recommend(models.RiskProfile{
		UrgencyLevel:       constants.UrgencyLow,
		BehavioralPatterns: models.BehavioralPatternFlags{SecurityConscious: true},
	}, nil)

	assert.Contains(t, reuse.ShortTermGoals, "Install and set up a password manager (recommended: Bitwarden, 1Password)")
	assert.Contains(t, noReuse.ShortTermGoals, "Consider using a password manager for better security")
	assert.Empty(t, conscious.ShortTermGoals)
}

func TestRecommend_PlatformGuidanceAboveThreshold(t *testing.T) {
	engine := service.NewRecommendationEngine(service.DefaultWeights())
	profile := models.RiskProfile{
		UrgencyLevel:        constants.UrgencyMedium,
		SocialExposureScore: 51,
		BehavioralPatterns:  models.BehavioralPatternFlags{SecurityConscious: true},
	}
	exposures := []models.SocialExposureRecord{
		{Platform: "Facebook", ExposureType: constants.ExposurePublicProfile, RiskLevel: constants.ExposureRiskHigh},
		{Platform: "myspace", ExposureType: constants.ExposurePublicProfile, RiskLevel: constants.ExposureRiskLow},
	}

	set := engine.Recommend(profile, exposures)

	// Known platform matched case-insensitively, unknown platform skipped,
	// generic hygiene items appended.
	assert.Contains(t, set.ShortTermGoals, "Review Facebook privacy settings: limit post visibility, disable facial recognition, check app permissions")
	assert.Contains(t, set.ShortTermGoals, "Turn off location sharing across all social media platforms")
	for _, goal := range set.ShortTermGoals {
		assert.NotContains(t, goal, "myspace")
	}
}

func TestRecommend_NoPlatformGuidanceAtThreshold(t *testing.T) {
	engine := service.NewRecommendationEngine(service.DefaultWeights())
	profile := models.RiskProfile{
		UrgencyLevel:        constants.UrgencyMedium,
		SocialExposureScore: 50,
		BehavioralPatterns:  models.BehavioralPatternFlags{SecurityConscious: true},
	}

	set := engine.Recommend(profile, []models.SocialExposureRecord{
		{Platform: "facebook", ExposureType: constants.ExposurePublicProfile, RiskLevel: constants.ExposureRiskHigh},
	})

	assert.Empty(t, set.ShortTermGoals)
}

func TestRecommend_NoDuplicatesWithinCategory(t *testing.T) {
	engine := service.NewRecommendationEngine(service.DefaultWeights())
	profile := models.RiskProfile{
		UrgencyLevel:        constants.UrgencyCritical,
		SocialExposureScore: 90,
		DataSensitivity: models.DataSensitivityFlags{
			FinancialData:       true,
			AuthenticationData:  true,
			PersonalIdentifiers: true,
			ContactInformation:  true,
		},
		BehavioralPatterns: models.BehavioralPatternFlags{PasswordReuseLikely: true},
	}
	exposures := []models.SocialExposureRecord{
		{Platform: "facebook", ExposureType: constants.ExposureLocationData, RiskLevel: constants.ExposureRiskHigh},
		{Platform: "facebook", ExposureType: constants.ExposurePrivateMessages, RiskLevel: constants.ExposureRiskHigh},
	}

	set := engine.Recommend(profile, exposures)

	for _, category := range [][]string{set.ImmediateActions, set.ShortTermGoals, set.LongTermImprovements, set.EducationalResources} {
		seen := make(map[string]int)
		for _, item := range category {
			seen[item]++
			assert.Equal(t, 1, seen[item], "duplicate: %s", item)
		}
	}
}

func TestPriorityScore(t *testing.T) {
	engine := service.NewRecommendationEngine(service.DefaultWeights())

	cases := []struct {
		name     string
		profile  models.RiskProfile
		expected int
	}{
		{
			"low urgency, not security conscious",
			models.RiskProfile{UrgencyLevel: constants.UrgencyLow},
			30, // 20 base + 10
		},
		{
			"2fa user skips the unaware bonus",
			models.RiskProfile{
				UrgencyLevel:       constants.UrgencyLow,
				BehavioralPatterns: models.BehavioralPatternFlags{SecurityConscious: true},
			},
			20,
		},
		{
			"medium with financial data",
			models.RiskProfile{
				UrgencyLevel:       constants.UrgencyMedium,
				DataSensitivity:    models.DataSensitivityFlags{FinancialData: true},
				BehavioralPatterns: models.BehavioralPatternFlags{SecurityConscious: true},
			},
			70, // 50 + 20
		},
		{
			"critical with everything clamps at 100",
			models.RiskProfile{
				UrgencyLevel: constants.UrgencyCritical,
				DataSensitivity: models.DataSensitivityFlags{
					FinancialData:       true,
					PersonalIdentifiers: true,
				},
			},
			100, // 95 + 20 + 15 + 10 saturates
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := engine.Recommend(tc.profile, nil)
			assert.Equal(t, tc.expected, set.PriorityScore)
		})
	}
}

func TestEducationalContent_ByUrgency(t *testing.T) {
	engine := service.NewRecommendationEngine(service.DefaultWeights())

	urgent := engine.EducationalContent(models.RiskProfile{UrgencyLevel: constants.UrgencyCritical})
	calm := engine.EducationalContent(models.RiskProfile{UrgencyLevel: constants.UrgencyLow})

	assert.NotEmpty(t, urgent.Articles)
	assert.NotEmpty(t, urgent.QuickTips)
	assert.Empty(t, calm.Articles)
	assert.Empty(t, calm.QuickTips)
	assert.Equal(t, urgent.Tools, calm.Tools)
}

func TestRecommend_EducationalResourcesByTechLevel(t *testing.T) {
	engine := service.NewRecommendationEngine(service.DefaultWeights())

	beginner := engine.Recommend(models.RiskProfile{UrgencyLevel: constants.UrgencyLow}, nil)
	savvy := engine.Recommend(models.RiskProfile{
		UrgencyLevel:       constants.UrgencyLow,
		BehavioralPatterns: models.BehavioralPatternFlags{TechSavvy: true},
	}, nil)

	assert.Contains(t, beginner.EducationalResources, "Understand the basics of two-factor authentication")
	assert.Contains(t, savvy.EducationalResources, "Advanced privacy tools and techniques")
}

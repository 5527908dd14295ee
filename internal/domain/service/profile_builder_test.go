package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veilscan/veilscan/internal/domain/models"
	"github.com/veilscan/veilscan/internal/domain/service"
	"github.com/veilscan/veilscan/pkg/constants"
)

func TestClassifyUrgency_FirstMatchWins(t *testing.T) {
	builder := service.NewRiskProfileBuilder(service.DefaultWeights())
	criticalBreach := []models.BreachRecord{{Name: "X", Severity: constants.SeverityCritical}}

	cases := []struct {
		name        string
		breachScore float64
		socialScore float64
		breaches    []models.BreachRecord
		expected    constants.UrgencyLevel
	}{
		{"all quiet", 10, 10, nil, constants.UrgencyLow},
		{"medium via breach", 40, 0, nil, constants.UrgencyMedium},
		{"medium via social", 0, 50, nil, constants.UrgencyMedium},
		{"high via breach", 60, 0, nil, constants.UrgencyHigh},
		{"high via social", 0, 70, nil, constants.UrgencyHigh},
		{"critical via breach score", 80, 0, nil, constants.UrgencyCritical},
		{"critical severity overrides low score", 10, 0, criticalBreach, constants.UrgencyCritical},
		// Conditions from two tiers true at once: the higher, earlier rule wins.
		{"high and medium both true", 65, 55, nil, constants.UrgencyHigh},
		{"critical and high both true", 85, 75, nil, constants.UrgencyCritical},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := builder.Build(tc.breachScore, tc.socialScore, tc.breaches, models.BehaviorSignals{})
			assert.Equal(t, tc.expected, profile.UrgencyLevel)
		})
	}
}

func TestDeriveDataSensitivity(t *testing.T) {
	breaches := []models.BreachRecord{
		{Name: "A", DataTypes: []string{constants.DataTypeEmail, constants.DataTypeName}},
		{Name: "B", DataTypes: []string{constants.DataTypeSSN}},
	}

	flags := service.DeriveDataSensitivity(breaches)

	assert.True(t, flags.FinancialData)       // ssn is in the financial set
	assert.True(t, flags.PersonalIdentifiers) // ssn again
	assert.True(t, flags.ContactInformation)  // email
	assert.False(t, flags.AuthenticationData)
}

func TestDeriveDataSensitivity_EmptyEvidence(t *testing.T) {
	assert.Equal(t, models.DataSensitivityFlags{}, service.DeriveDataSensitivity(nil))
}

func TestDeriveBehavioralPatterns(t *testing.T) {
	flags := service.DeriveBehavioralPatterns(models.BehaviorSignals{
		MultipleBreachesSameEmail: true,
		SocialPlatformsCount:      4,
		Has2FAEnabled:             true,
		UsesPasswordManager:       false,
	})

	assert.True(t, flags.PasswordReuseLikely)
	assert.True(t, flags.SocialMediaActive)
	assert.True(t, flags.SecurityConscious)
	assert.False(t, flags.TechSavvy)
}

func TestDeriveBehavioralPatterns_DefaultsAllFalse(t *testing.T) {
	assert.Equal(t, models.BehavioralPatternFlags{}, service.DeriveBehavioralPatterns(models.BehaviorSignals{}))
}

func TestDeriveBehavioralPatterns_PlatformCountThreshold(t *testing.T) {
	// Exactly at the threshold does not count as active.
	atThreshold := service.DeriveBehavioralPatterns(models.BehaviorSignals{SocialPlatformsCount: 3})
	aboveThreshold := service.DeriveBehavioralPatterns(models.BehaviorSignals{SocialPlatformsCount: 4})

	assert.False(t, atThreshold.SocialMediaActive)
	assert.True(t, aboveThreshold.SocialMediaActive)
}

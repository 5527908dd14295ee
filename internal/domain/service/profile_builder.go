package service

import (
	"github.com/veilscan/veilscan/internal/domain/models"
	"github.com/veilscan/veilscan/pkg/constants"
)

// RiskProfileBuilder classifies urgency and derives the sensitivity and
// behavioral flags that drive recommendation selection.
type RiskProfileBuilder struct {
	weights Weights
}

// NewRiskProfileBuilder creates a builder bound to a weighting policy.
func NewRiskProfileBuilder(w Weights) *RiskProfileBuilder {
	return &RiskProfileBuilder{weights: w}
}

// Build assembles the risk profile from the component scores, the breach
// evidence and the behavioral signals. The flags never feed back into the
// urgency classification; they only select recommendations.
func (b *RiskProfileBuilder) Build(breachScore, socialScore float64, breaches []models.BreachRecord, behavior models.BehaviorSignals) models.RiskProfile {
	return models.RiskProfile{
		BreachSeverityScore: breachScore,
		SocialExposureScore: socialScore,
		DataSensitivity:     DeriveDataSensitivity(breaches),
		BehavioralPatterns:  DeriveBehavioralPatterns(behavior),
		UrgencyLevel:        b.classifyUrgency(breachScore, socialScore, breaches),
	}
}

// classifyUrgency evaluates the ordered rule list top-down; the first
// matching rule wins. The overlap between tiers is a policy choice: a
// critical-severity breach forces critical urgency even when the breach
// score sits below the critical cut-off, so this must not collapse into a
// max() over thresholds.
func (b *RiskProfileBuilder) classifyUrgency(breachScore, socialScore float64, breaches []models.BreachRecord) constants.UrgencyLevel {
	switch {
	case breachScore >= b.weights.UrgencyCriticalBreach || hasCriticalBreach(breaches):
		return constants.UrgencyCritical
	case breachScore >= b.weights.UrgencyHighBreach || socialScore >= b.weights.UrgencyHighSocial:
		return constants.UrgencyHigh
	case breachScore >= b.weights.UrgencyMediumBreach || socialScore >= b.weights.UrgencyMediumSocial:
		return constants.UrgencyMedium
	default:
		return constants.UrgencyLow
	}
}

func hasCriticalBreach(breaches []models.BreachRecord) bool {
	for _, breach := range breaches {
		if breach.Severity == constants.SeverityCritical {
			return true
		}
	}
	return false
}

// Category membership sets for the sensitivity flags.
var (
	financialDataTypes  = []string{constants.DataTypeCreditCard, "bank_account", constants.DataTypeSSN}
	authDataTypes       = []string{constants.DataTypePassword, "security_question"}
	identifierDataTypes = []string{constants.DataTypeSSN, "passport", "drivers_license"}
	contactDataTypes    = []string{constants.DataTypeEmail, constants.DataTypePhone, constants.DataTypeAddress}
)

// DeriveDataSensitivity checks whether any data type across all breaches
// falls into each sensitivity category. Pure predicate; individually
// testable.
func DeriveDataSensitivity(breaches []models.BreachRecord) models.DataSensitivityFlags {
	compromised := make(map[string]struct{})
	for _, breach := range breaches {
		for _, dataType := range breach.DataTypes {
			compromised[dataType] = struct{}{}
		}
	}

	containsAny := func(members []string) bool {
		for _, m := range members {
			if _, ok := compromised[m]; ok {
				return true
			}
		}
		return false
	}

	return models.DataSensitivityFlags{
		FinancialData:       containsAny(financialDataTypes),
		AuthenticationData:  containsAny(authDataTypes),
		PersonalIdentifiers: containsAny(identifierDataTypes),
		ContactInformation:  containsAny(contactDataTypes),
	}
}

// DeriveBehavioralPatterns maps the behavioral signals onto the traits the
// recommendation engine branches on. The zero-value signal block yields all
// false.
func DeriveBehavioralPatterns(behavior models.BehaviorSignals) models.BehavioralPatternFlags {
	return models.BehavioralPatternFlags{
		PasswordReuseLikely: behavior.MultipleBreachesSameEmail,
		SocialMediaActive:   behavior.SocialPlatformsCount > constants.SocialMediaActiveThreshold,
		SecurityConscious:   behavior.Has2FAEnabled,
		TechSavvy:           behavior.UsesPasswordManager,
	}
}

// Package service implements the risk aggregation and recommendation engine:
// a deterministic, side-effect-free pipeline that turns breach, social and
// behavioral evidence into a scored report with remediation guidance.
package service

import "github.com/veilscan/veilscan/pkg/constants"

// Weights is the immutable weighting policy injected into each calculator.
// Keeping the tables here, rather than as literals inside the control flow,
// lets the policy be unit-tested and overridden from configuration without
// touching the pipeline.
type Weights struct {
	Severity         map[constants.BreachSeverity]float64
	SeverityFallback float64

	DataTypes        map[string]float64
	DataTypeFallback float64

	Exposure         map[constants.ExposureType]float64
	ExposureFallback float64

	ExposureRiskFactor map[constants.ExposureRiskLevel]float64

	// SocialDiscount scales the summed social score; social evidence is
	// weighted below breach evidence.
	SocialDiscount float64

	// Recency multipliers applied per breach by elapsed days.
	Recency30Days  float64
	Recency90Days  float64
	Recency365Days float64
	RecencyOlder   float64

	// Overall risk-level thresholds, inclusive on the lower bound.
	MediumThreshold   float64
	HighThreshold     float64
	CriticalThreshold float64

	// Component-score weights of the overall combination.
	BreachWeight  float64
	SocialWeight  float64
	PrivacyWeight float64

	// Privacy score deductions per triggered factor.
	DeductEmailInBreaches   float64
	DeductSocialMediaPublic float64
	DeductRecentActivity    float64
	DeductHighRiskExposure  float64

	// Urgency classification cut-offs (first matching rule wins).
	UrgencyCriticalBreach float64
	UrgencyHighBreach     float64
	UrgencyHighSocial     float64
	UrgencyMediumBreach   float64
	UrgencyMediumSocial   float64

	// Recommendation policy.
	PriorityBase            map[constants.UrgencyLevel]int
	SocialGuidanceThreshold float64
	PriorityFinancialBonus  int
	PriorityIdentifierBonus int
	PriorityUnawareBonus    int
}

// DefaultWeights returns the built-in weighting policy.
func DefaultWeights() Weights {
	return Weights{
		Severity: map[constants.BreachSeverity]float64{
			constants.SeverityCritical: 40,
			constants.SeverityHigh:     25,
			constants.SeverityMedium:   15,
			constants.SeverityLow:      5,
		},
		SeverityFallback: 5,

		DataTypes: map[string]float64{
			constants.DataTypePassword:   20,
			constants.DataTypeSSN:        25,
			constants.DataTypeCreditCard: 30,
			constants.DataTypeEmail:      5,
			constants.DataTypePhone:      10,
			constants.DataTypeAddress:    15,
			constants.DataTypeName:       3,
		},
		DataTypeFallback: 2,

		Exposure: map[constants.ExposureType]float64{
			constants.ExposurePublicProfile:   10,
			constants.ExposurePersonalInfo:    20,
			constants.ExposureLocationData:    25,
			constants.ExposureFinancialInfo:   35,
			constants.ExposurePrivateMessages: 30,
		},
		ExposureFallback: 10,

		ExposureRiskFactor: map[constants.ExposureRiskLevel]float64{
			constants.ExposureRiskLow:    0.5,
			constants.ExposureRiskMedium: 1.0,
			constants.ExposureRiskHigh:   1.8,
		},

		SocialDiscount: 0.8,

		Recency30Days:  1.5,
		Recency90Days:  1.3,
		Recency365Days: 1.1,
		RecencyOlder:   0.8,

		MediumThreshold:   40,
		HighThreshold:     60,
		CriticalThreshold: 80,

		BreachWeight:  0.5,
		SocialWeight:  0.3,
		PrivacyWeight: 0.2,

		DeductEmailInBreaches:   30,
		DeductSocialMediaPublic: 20,
		DeductRecentActivity:    25,
		DeductHighRiskExposure:  15,

		UrgencyCriticalBreach: 80,
		UrgencyHighBreach:     60,
		UrgencyHighSocial:     70,
		UrgencyMediumBreach:   40,
		UrgencyMediumSocial:   50,

		PriorityBase: map[constants.UrgencyLevel]int{
			constants.UrgencyLow:      20,
			constants.UrgencyMedium:   50,
			constants.UrgencyHigh:     75,
			constants.UrgencyCritical: 95,
		},
		SocialGuidanceThreshold: 50,
		PriorityFinancialBonus:  20,
		PriorityIdentifierBonus: 15,
		PriorityUnawareBonus:    10,
	}
}

// Overrides carries optional weighting adjustments from configuration. Nil
// maps and zero values leave the corresponding default untouched.
type Overrides struct {
	Severity          map[string]float64
	DataTypes         map[string]float64
	Exposure          map[string]float64
	SocialDiscount    float64
	MediumThreshold   float64
	HighThreshold     float64
	CriticalThreshold float64
}

// WithOverrides returns a copy of the weights with the overrides applied.
// The receiver is never mutated; calculators built from an earlier snapshot
// keep scoring with it.
func (w Weights) WithOverrides(o Overrides) Weights {
	out := w
	out.Severity = cloneMap(w.Severity)
	out.DataTypes = cloneMap(w.DataTypes)
	out.Exposure = cloneMap(w.Exposure)
	out.ExposureRiskFactor = cloneMap(w.ExposureRiskFactor)
	out.PriorityBase = cloneMap(w.PriorityBase)

	for k, v := range o.Severity {
		if sev, ok := constants.ParseBreachSeverity(k); ok {
			out.Severity[sev] = v
		}
	}
	for k, v := range o.DataTypes {
		out.DataTypes[k] = v
	}
	for k, v := range o.Exposure {
		if typ, ok := constants.ParseExposureType(k); ok {
			out.Exposure[typ] = v
		}
	}
	if o.SocialDiscount > 0 {
		out.SocialDiscount = o.SocialDiscount
	}
	if o.MediumThreshold > 0 {
		out.MediumThreshold = o.MediumThreshold
	}
	if o.HighThreshold > 0 {
		out.HighThreshold = o.HighThreshold
	}
	if o.CriticalThreshold > 0 {
		out.CriticalThreshold = o.CriticalThreshold
	}
	return out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

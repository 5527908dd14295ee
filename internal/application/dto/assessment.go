// Package dto defines the wire-level request and response shapes of the
// application layer and their normalization into domain values.
package dto

import (
	"time"

	"github.com/veilscan/veilscan/internal/domain/models"
	"github.com/veilscan/veilscan/pkg/constants"
)

// Date layouts accepted on breach records, tried in order.
var breachDateLayouts = []string{"2006-01-02", time.RFC3339}

// AssessmentRequest is the evidence document submitted for evaluation.
// Enum fields arrive as raw strings and are normalized, never rejected.
type AssessmentRequest struct {
	Breaches        []BreachInput   `json:"breaches"`
	SocialExposures []ExposureInput `json:"social_exposures"`
	BehaviorSignals *BehaviorInput  `json:"behavior_signals"`
}

// BreachInput is one raw breach record.
type BreachInput struct {
	Name       string   `json:"name"`
	Severity   string   `json:"severity"`
	DataTypes  []string `json:"data_types"`
	BreachDate string   `json:"breach_date,omitempty"`
}

// ExposureInput is one raw social exposure record.
type ExposureInput struct {
	Platform     string `json:"platform"`
	ExposureType string `json:"exposure_type"`
	RiskLevel    string `json:"risk_level"`
}

// BehaviorInput mirrors the optional behavior-signal block. Absent fields
// keep their documented zero defaults.
type BehaviorInput struct {
	MultipleBreachesSameEmail bool `json:"multiple_breaches_same_email"`
	SocialPlatformsCount      int  `json:"social_platforms_count"`
	Has2FAEnabled             bool `json:"has_2fa_enabled"`
	UsesPasswordManager       bool `json:"uses_password_manager"`
}

// Fallback records one input value that was replaced by its documented
// default during normalization.
type Fallback struct {
	Field string
	Value string
}

// Normalize converts the raw request into a domain evidence bundle. Every
// unrecognized enum value, missing name and unparseable date is substituted
// with its fallback and reported so the caller can log and count it.
// Normalization never fails.
func (r *AssessmentRequest) Normalize() (models.EvidenceBundle, []Fallback) {
	var fallbacks []Fallback
	record := func(field, value string) {
		fallbacks = append(fallbacks, Fallback{Field: field, Value: value})
	}

	bundle := models.EvidenceBundle{}

	for _, b := range r.Breaches {
		name := b.Name
		if name == "" {
			name = constants.UnknownLabel
			record("breach.name", "")
		}

		severity, ok := constants.ParseBreachSeverity(b.Severity)
		if !ok {
			record("breach.severity", b.Severity)
		}

		var breachDate *time.Time
		if b.BreachDate != "" {
			parsed, ok := parseBreachDate(b.BreachDate)
			if ok {
				breachDate = &parsed
			} else {
				record("breach.breach_date", b.BreachDate)
			}
		}

		bundle.Breaches = append(bundle.Breaches, models.BreachRecord{
			Name:       name,
			Severity:   severity,
			DataTypes:  b.DataTypes,
			BreachDate: breachDate,
		})
	}

	for _, e := range r.SocialExposures {
		platform := e.Platform
		if platform == "" {
			platform = constants.UnknownLabel
			record("exposure.platform", "")
		}

		exposureType, ok := constants.ParseExposureType(e.ExposureType)
		if !ok {
			record("exposure.exposure_type", e.ExposureType)
		}

		riskLevel, ok := constants.ParseExposureRiskLevel(e.RiskLevel)
		if !ok {
			record("exposure.risk_level", e.RiskLevel)
		}

		bundle.Exposures = append(bundle.Exposures, models.SocialExposureRecord{
			Platform:     platform,
			ExposureType: exposureType,
			RiskLevel:    riskLevel,
		})
	}

	if r.BehaviorSignals != nil {
		bundle.Behavior = models.BehaviorSignals{
			MultipleBreachesSameEmail: r.BehaviorSignals.MultipleBreachesSameEmail,
			SocialPlatformsCount:      r.BehaviorSignals.SocialPlatformsCount,
			Has2FAEnabled:             r.BehaviorSignals.Has2FAEnabled,
			UsesPasswordManager:       r.BehaviorSignals.UsesPasswordManager,
		}
	}

	return bundle, fallbacks
}

func parseBreachDate(raw string) (time.Time, bool) {
	for _, layout := range breachDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

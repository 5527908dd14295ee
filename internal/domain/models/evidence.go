// Package models defines the value objects of the risk assessment domain.
// All entities are created at the start of one evaluation, read-only
// thereafter, and discarded after the report is returned.
package models

import (
	"time"

	"github.com/veilscan/veilscan/pkg/constants"
)

// BreachRecord is evidence that an account or credential associated with the
// subject appeared in a known data-exposure incident. Enum fields are
// normalized before the record enters the domain layer.
type BreachRecord struct {
	Name       string                   `json:"name"`
	Severity   constants.BreachSeverity `json:"severity"`
	DataTypes  []string                 `json:"data_types"`
	BreachDate *time.Time               `json:"breach_date,omitempty"`
}

// SocialExposureRecord is evidence that the subject's information is visible
// via a social-media surface.
type SocialExposureRecord struct {
	Platform     string                      `json:"platform"`
	ExposureType constants.ExposureType      `json:"exposure_type"`
	RiskLevel    constants.ExposureRiskLevel `json:"risk_level"`
}

// BehaviorSignals is the optional behavioral input. The zero value is the
// documented default for an absent signal block.
type BehaviorSignals struct {
	MultipleBreachesSameEmail bool `json:"multiple_breaches_same_email"`
	SocialPlatformsCount      int  `json:"social_platforms_count"`
	Has2FAEnabled             bool `json:"has_2fa_enabled"`
	UsesPasswordManager       bool `json:"uses_password_manager"`
}

// EvidenceBundle is the complete, normalized input of one evaluation.
type EvidenceBundle struct {
	Breaches  []BreachRecord         `json:"breaches"`
	Exposures []SocialExposureRecord `json:"social_exposures"`
	Behavior  BehaviorSignals        `json:"behavior_signals"`
}

// RecentBreachActivity reports whether any dated breach falls within the
// recent-activity window relative to the evaluation instant. Undated breaches
// never count as recent.
func RecentBreachActivity(breaches []BreachRecord, now time.Time) bool {
	for _, b := range breaches {
		if b.BreachDate == nil {
			continue
		}
		if DaysSince(*b.BreachDate, now) <= constants.RecentBreachWindowDays {
			return true
		}
	}
	return false
}

// DaysSince returns the whole days elapsed from t to now.
func DaysSince(t, now time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}

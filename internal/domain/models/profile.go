package models

import "github.com/veilscan/veilscan/pkg/constants"

// DataSensitivityFlags marks which sensitive data categories appear in the
// subject's combined breach evidence.
type DataSensitivityFlags struct {
	FinancialData       bool `json:"financial_data"`
	AuthenticationData  bool `json:"authentication_data"`
	PersonalIdentifiers bool `json:"personal_identifiers"`
	ContactInformation  bool `json:"contact_information"`
}

// BehavioralPatternFlags summarizes the behavioral signals into the traits
// recommendation selection branches on.
type BehavioralPatternFlags struct {
	PasswordReuseLikely bool `json:"password_reuse_likely"`
	SocialMediaActive   bool `json:"social_media_active"`
	SecurityConscious   bool `json:"security_conscious"`
	TechSavvy           bool `json:"tech_savvy"`
}

// RiskProfile is the single hand-off object between the scoring and
// recommendation stages. It is immutable once constructed.
type RiskProfile struct {
	BreachSeverityScore float64                `json:"breach_severity_score"`
	SocialExposureScore float64                `json:"social_exposure_score"`
	DataSensitivity     DataSensitivityFlags   `json:"data_sensitivity"`
	BehavioralPatterns  BehavioralPatternFlags `json:"behavioral_patterns"`
	UrgencyLevel        constants.UrgencyLevel `json:"urgency_level"`
}

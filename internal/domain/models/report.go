package models

import (
	"time"

	"github.com/veilscan/veilscan/pkg/constants"
)

// BreachDetail is the per-breach contribution to the breach component score.
type BreachDetail struct {
	Name      string                   `json:"name"`
	Score     float64                  `json:"score"`
	Severity  constants.BreachSeverity `json:"severity"`
	DataTypes []string                 `json:"data_types"`
}

// BreachRisk is the breach component score with its explainability breakdown.
type BreachRisk struct {
	Score       float64        `json:"score"`
	BreachCount int            `json:"breach_count"`
	Details     []BreachDetail `json:"details"`
	Note        string         `json:"note,omitempty"`
}

// ExposureDetail is the per-exposure contribution to the social component score.
type ExposureDetail struct {
	Platform  string                      `json:"platform"`
	Type      constants.ExposureType      `json:"type"`
	RiskLevel constants.ExposureRiskLevel `json:"risk_level"`
	Score     float64                     `json:"score"`
}

// SocialRisk is the social-exposure component score with its breakdown.
type SocialRisk struct {
	Score         float64          `json:"score"`
	ExposureCount int              `json:"exposure_count"`
	Details       []ExposureDetail `json:"details"`
	Note          string           `json:"note,omitempty"`
}

// PrivacyFactors are the boolean deduction triggers behind a privacy score.
type PrivacyFactors struct {
	EmailInBreaches   bool `json:"email_in_breaches"`
	SocialMediaPublic bool `json:"social_media_public"`
	RecentActivity    bool `json:"recent_activity"`
	HighRiskExposure  bool `json:"high_risk_exposure"`
}

// PrivacyAssessment is the deduction-based privacy hygiene score (100 = best)
// with the triggered factors and their remediation guidance.
type PrivacyAssessment struct {
	Score           float64        `json:"score"`
	Factors         PrivacyFactors `json:"factors"`
	Recommendations []string       `json:"recommendations"`
}

// RecommendationSet is the categorized remediation guidance for one profile.
type RecommendationSet struct {
	ImmediateActions     []string `json:"immediate_actions"`
	ShortTermGoals       []string `json:"short_term_goals"`
	LongTermImprovements []string `json:"long_term_improvements"`
	EducationalResources []string `json:"educational_resources"`
	PriorityScore        int      `json:"priority_score"`
}

// EducationalContent is supplementary learning material selected by urgency.
type EducationalContent struct {
	Articles  []string `json:"articles"`
	QuickTips []string `json:"quick_tips"`
	Tools     []string `json:"tools"`
}

// RiskReport is the final output of one evaluation. It is constructed once,
// returned to the caller and never persisted by this service.
type RiskReport struct {
	ID                string              `json:"id,omitempty"`
	GeneratedAt       time.Time           `json:"generated_at"`
	OverallScore      float64             `json:"overall_score"`
	RiskLevel         constants.RiskLevel `json:"risk_level"`
	BreachRisk        BreachRisk          `json:"breach_risk"`
	SocialRisk        SocialRisk          `json:"social_risk"`
	PrivacyScore      float64             `json:"privacy_score"`
	PrivacyAssessment PrivacyAssessment   `json:"privacy_assessment"`
	Profile           RiskProfile         `json:"risk_profile"`
	Recommendations   RecommendationSet   `json:"recommendations"`
	Educational       EducationalContent  `json:"educational_content"`
	Summary           string              `json:"summary"`
}

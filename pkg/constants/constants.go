// Package constants defines system-wide constants for the VeilScan risk service.
// This package provides type-safe constant definitions used across all modules.
package constants

// ================================================================================
// Breach Severity
// ================================================================================

// BreachSeverity represents the reported severity of a data breach.
type BreachSeverity string

const (
	// SeverityLow is the default severity for unrecognized or missing values
	SeverityLow BreachSeverity = "low"

	// SeverityMedium indicates a moderate-impact breach
	SeverityMedium BreachSeverity = "medium"

	// SeverityHigh indicates a high-impact breach
	SeverityHigh BreachSeverity = "high"

	// SeverityCritical indicates the most severe class of breach
	SeverityCritical BreachSeverity = "critical"
)

// ParseBreachSeverity normalizes a raw severity value. Unrecognized values
// fall back to SeverityLow; the second return reports whether the input was
// recognized so the calling layer can surface the fallback.
func ParseBreachSeverity(raw string) (BreachSeverity, bool) {
	switch BreachSeverity(raw) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return BreachSeverity(raw), true
	}
	return SeverityLow, false
}

// ================================================================================
// Social Exposure
// ================================================================================

// ExposureType classifies what a social-media surface reveals.
type ExposureType string

const (
	// ExposurePublicProfile is the default exposure type
	ExposurePublicProfile ExposureType = "public_profile"

	// ExposurePersonalInfo covers personal details visible to the public
	ExposurePersonalInfo ExposureType = "personal_info"

	// ExposureLocationData covers location sharing and check-ins
	ExposureLocationData ExposureType = "location_data"

	// ExposureFinancialInfo covers financial details leaking via a profile
	ExposureFinancialInfo ExposureType = "financial_info"

	// ExposurePrivateMessages covers exposed private communications
	ExposurePrivateMessages ExposureType = "private_messages"
)

// ParseExposureType normalizes a raw exposure type, falling back to
// ExposurePublicProfile for unrecognized values.
func ParseExposureType(raw string) (ExposureType, bool) {
	switch ExposureType(raw) {
	case ExposurePublicProfile, ExposurePersonalInfo, ExposureLocationData,
		ExposureFinancialInfo, ExposurePrivateMessages:
		return ExposureType(raw), true
	}
	return ExposurePublicProfile, false
}

// ExposureRiskLevel is the three-tier risk rating attached to one exposure record.
type ExposureRiskLevel string

const (
	ExposureRiskLow    ExposureRiskLevel = "low"
	ExposureRiskMedium ExposureRiskLevel = "medium"
	ExposureRiskHigh   ExposureRiskLevel = "high"
)

// ParseExposureRiskLevel normalizes a raw exposure risk level, falling back
// to ExposureRiskLow for unrecognized values.
func ParseExposureRiskLevel(raw string) (ExposureRiskLevel, bool) {
	switch ExposureRiskLevel(raw) {
	case ExposureRiskLow, ExposureRiskMedium, ExposureRiskHigh:
		return ExposureRiskLevel(raw), true
	}
	return ExposureRiskLow, false
}

// ================================================================================
// Risk Classification
// ================================================================================

// RiskLevel is the four-tier classification of an overall risk score.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// UrgencyLevel drives which recommendation tiers activate.
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

// ================================================================================
// Data Types (open vocabulary; these are the weighted members)
// ================================================================================

const (
	DataTypePassword   = "password"
	DataTypeSSN        = "ssn"
	DataTypeCreditCard = "credit_card"
	DataTypeEmail      = "email"
	DataTypePhone      = "phone"
	DataTypeAddress    = "address"
	DataTypeName       = "name"
)

// ================================================================================
// Evidence Defaults
// ================================================================================

const (
	// UnknownLabel substitutes for a missing breach name or platform
	UnknownLabel = "Unknown"

	// RecentBreachWindowDays is the window that marks breach activity as recent
	RecentBreachWindowDays = 90

	// SocialMediaActiveThreshold is the platform count above which a subject
	// counts as an active social-media user
	SocialMediaActiveThreshold = 3
)

// ================================================================================
// Logging
// ================================================================================

// LogLevel represents the severity level of log messages
type LogLevel string

const (
	// LogLevelDebug is the most verbose logging level
	LogLevelDebug LogLevel = "debug"

	// LogLevelInfo is the standard informational logging level
	LogLevelInfo LogLevel = "info"

	// LogLevelWarn indicates potential issues
	LogLevelWarn LogLevel = "warn"

	// LogLevelError indicates failures that need attention
	LogLevelError LogLevel = "error"
)

// ================================================================================
// Context Keys
// ================================================================================

// ContextKey is the type used for values stored in a request context.
type ContextKey string

const (
	// ContextKeyRequestID carries the per-request correlation id
	ContextKeyRequestID ContextKey = "request_id"

	// ContextKeyTraceID carries the trace id extracted by middleware
	ContextKeyTraceID ContextKey = "trace_id"
)

// ServiceName identifies this service in traces and logs.
const ServiceName = "veilscan-risk-service"

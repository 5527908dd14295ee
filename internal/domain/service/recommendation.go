package service

import (
	"strings"

	"github.com/veilscan/veilscan/internal/domain/models"
	"github.com/veilscan/veilscan/pkg/constants"
)

// RecommendationEngine maps a risk profile to categorized remediation
// guidance. Selection is rule-based over a fixed knowledge base; nothing is
// learned or looked up remotely.
type RecommendationEngine struct {
	weights Weights
}

// NewRecommendationEngine creates an engine bound to a weighting policy.
func NewRecommendationEngine(w Weights) *RecommendationEngine {
	return &RecommendationEngine{weights: w}
}

// Knowledge base of recommendation strings. Trigger conditions keep the
// categories disjoint; within a category, duplicates are dropped on insertion.
var (
	urgentFinancialActions = []string{
		"URGENT: Monitor all bank and credit card accounts for unauthorized transactions",
		"Contact your bank immediately to report potential compromise",
		"Place fraud alerts on your credit reports with all three bureaus",
	}

	urgentAuthenticationActions = []string{
		"Change passwords on ALL accounts immediately, starting with financial and email",
		"Enable two-factor authentication on every account that supports it",
	}

	passwordManagerTrack = []string{
		"Install and set up a password manager (recommended: Bitwarden, 1Password)",
		"Generate unique passwords for each of your accounts",
		"Update your most important accounts first: email, banking, work",
	}

	passwordManagerSuggestion = "Consider using a password manager for better security"

	genericSocialHygiene = []string{
		"Audit and remove third-party apps connected to your social accounts",
		"Review and delete old posts containing personal information",
		"Turn off location sharing across all social media platforms",
	}

	longTermImprovements = []string{
		"Set up regular security audits (quarterly review of accounts and passwords)",
		"Enable security notifications on all important accounts",
		"Consider using a VPN for enhanced privacy protection",
		"Regularly monitor your credit reports and identity theft protection services",
	}

	beginnerResources = []string{
		"Learn about phishing attacks and how to identify them",
		"Understand the basics of two-factor authentication",
		"Read about safe browsing practices and public Wi-Fi risks",
	}

	advancedResources = []string{
		"Advanced privacy tools and techniques",
		"Understanding data breach notifications and response",
		"Corporate security best practices for remote work",
	}

	// platformGuidance is keyed by lowercased platform name; platforms not in
	// the table are skipped.
	platformGuidance = map[string]string{
		"facebook":  "Review Facebook privacy settings: limit post visibility, disable facial recognition, check app permissions",
		"instagram": "Make Instagram account private, disable location services, review story settings",
		"twitter":   "Protect your Twitter account, review who can find you by email/phone, limit photo tagging",
		"linkedin":  "Adjust LinkedIn visibility settings, limit profile information to connections only",
		"tiktok":    "Set TikTok account to private, disable location sharing, review data download settings",
	}

	breachResponseArticles = []string{
		"What to Do When Your Data Has Been Breached: A Step-by-Step Guide",
		"Understanding Credit Monitoring and Identity Theft Protection",
		"How to Secure Your Accounts After a Data Breach",
	}

	breachResponseQuickTips = []string{
		"Change passwords starting with your most important accounts",
		"Enable 2FA wherever possible - it blocks 99.9% of automated attacks",
		"Monitor your accounts daily for the next 30 days",
	}

	educationalTools = []string{
		"HaveIBeenPwned - Check for future breaches",
		"Password Manager Comparison Guide",
		"Two-Factor Authentication Setup Guides",
	}
)

// Recommend filters the knowledge base by the profile's flags. The exposure
// records are consulted only for platform-specific guidance.
func (e *RecommendationEngine) Recommend(profile models.RiskProfile, exposures []models.SocialExposureRecord) models.RecommendationSet {
	immediate := newUniqueList()
	shortTerm := newUniqueList()

	urgent := profile.UrgencyLevel == constants.UrgencyCritical || profile.UrgencyLevel == constants.UrgencyHigh

	if urgent && profile.DataSensitivity.FinancialData {
		immediate.append(urgentFinancialActions...)
	}
	if profile.DataSensitivity.AuthenticationData {
		immediate.append(urgentAuthenticationActions...)
	}

	if !profile.BehavioralPatterns.SecurityConscious {
		if profile.BehavioralPatterns.PasswordReuseLikely {
			shortTerm.append(passwordManagerTrack...)
		} else {
			shortTerm.append(passwordManagerSuggestion)
		}
	}

	if profile.SocialExposureScore > e.weights.SocialGuidanceThreshold {
		shortTerm.append(e.socialMediaGuidance(exposures)...)
	}

	resources := beginnerResources
	if profile.BehavioralPatterns.TechSavvy {
		resources = advancedResources
	}

	return models.RecommendationSet{
		ImmediateActions:     immediate.items(),
		ShortTermGoals:       shortTerm.items(),
		LongTermImprovements: append([]string(nil), longTermImprovements...),
		EducationalResources: append([]string(nil), resources...),
		PriorityScore:        e.priorityScore(profile),
	}
}

// socialMediaGuidance returns platform-specific guidance for every known
// platform in the evidence, followed by the generic hygiene items.
func (e *RecommendationEngine) socialMediaGuidance(exposures []models.SocialExposureRecord) []string {
	guidance := make([]string, 0, len(exposures)+len(genericSocialHygiene))
	seen := make(map[string]struct{})

	for _, exposure := range exposures {
		platform := strings.ToLower(exposure.Platform)
		if _, dup := seen[platform]; dup {
			continue
		}
		seen[platform] = struct{}{}
		if tip, ok := platformGuidance[platform]; ok {
			guidance = append(guidance, tip)
		}
	}
	return append(guidance, genericSocialHygiene...)
}

// priorityScore combines the urgency base with sensitivity and behavior
// bonuses, saturating at 100.
func (e *RecommendationEngine) priorityScore(profile models.RiskProfile) int {
	score := e.weights.PriorityBase[profile.UrgencyLevel]

	if profile.DataSensitivity.FinancialData {
		score += e.weights.PriorityFinancialBonus
	}
	if profile.DataSensitivity.PersonalIdentifiers {
		score += e.weights.PriorityIdentifierBonus
	}
	if !profile.BehavioralPatterns.SecurityConscious {
		score += e.weights.PriorityUnawareBonus
	}

	if score > 100 {
		score = 100
	}
	return score
}

// EducationalContent selects learning material by urgency. The tools list is
// profile-independent.
func (e *RecommendationEngine) EducationalContent(profile models.RiskProfile) models.EducationalContent {
	content := models.EducationalContent{
		Articles:  []string{},
		QuickTips: []string{},
		Tools:     append([]string(nil), educationalTools...),
	}

	if profile.UrgencyLevel == constants.UrgencyCritical || profile.UrgencyLevel == constants.UrgencyHigh {
		content.Articles = append([]string(nil), breachResponseArticles...)
		content.QuickTips = append([]string(nil), breachResponseQuickTips...)
	}
	return content
}

// uniqueList keeps insertion order while dropping duplicate strings.
type uniqueList struct {
	seen  map[string]struct{}
	order []string
}

func newUniqueList() *uniqueList {
	return &uniqueList{seen: make(map[string]struct{}), order: []string{}}
}

func (l *uniqueList) append(items ...string) {
	for _, item := range items {
		if _, dup := l.seen[item]; dup {
			continue
		}
		l.seen[item] = struct{}{}
		l.order = append(l.order, item)
	}
}

func (l *uniqueList) items() []string {
	return l.order
}

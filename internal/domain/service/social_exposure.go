package service

import "github.com/veilscan/veilscan/internal/domain/models"

// SocialExposureCalculator scores social-media exposure evidence. It is
// stateless and safe for concurrent use.
type SocialExposureCalculator struct {
	weights Weights
}

// NewSocialExposureCalculator creates a calculator bound to a weighting policy.
func NewSocialExposureCalculator(w Weights) *SocialExposureCalculator {
	return &SocialExposureCalculator{weights: w}
}

// Score computes the social component score. Each exposure contributes its
// type weight scaled by the risk-level factor; the sum is discounted (social
// evidence weighs below breach evidence) and saturates at 100.
func (c *SocialExposureCalculator) Score(exposures []models.SocialExposureRecord) models.SocialRisk {
	if len(exposures) == 0 {
		return models.SocialRisk{
			Score:   0,
			Details: []models.ExposureDetail{},
			Note:    "No social media exposure detected",
		}
	}

	total := 0.0
	details := make([]models.ExposureDetail, 0, len(exposures))

	for _, exposure := range exposures {
		score := c.itemScore(exposure)
		total += score

		details = append(details, models.ExposureDetail{
			Platform:  exposure.Platform,
			Type:      exposure.ExposureType,
			RiskLevel: exposure.RiskLevel,
			Score:     round1(score),
		})
	}

	return models.SocialRisk{
		Score:         round1(clamp100(total * c.weights.SocialDiscount)),
		ExposureCount: len(exposures),
		Details:       details,
	}
}

func (c *SocialExposureCalculator) itemScore(exposure models.SocialExposureRecord) float64 {
	base, ok := c.weights.Exposure[exposure.ExposureType]
	if !ok {
		base = c.weights.ExposureFallback
	}
	factor, ok := c.weights.ExposureRiskFactor[exposure.RiskLevel]
	if !ok {
		factor = 1.0
	}
	return base * factor
}

package service

import (
	"github.com/veilscan/veilscan/internal/config"
	domainsvc "github.com/veilscan/veilscan/internal/domain/service"
)

// WeightsFromScoring merges validated configuration overrides over the
// built-in weighting policy.
func WeightsFromScoring(scoring config.ScoringConfig) domainsvc.Weights {
	return domainsvc.DefaultWeights().WithOverrides(domainsvc.Overrides{
		Severity:          scoring.SeverityWeights,
		DataTypes:         scoring.DataTypeWeights,
		Exposure:          scoring.ExposureWeights,
		SocialDiscount:    scoring.SocialDiscount,
		MediumThreshold:   scoring.MediumThreshold,
		HighThreshold:     scoring.HighThreshold,
		CriticalThreshold: scoring.CriticalThreshold,
	})
}

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilscan/veilscan/internal/config"
	"github.com/veilscan/veilscan/pkg/logger"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	loader := config.NewLoader(logger.NewNop())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Cache.ReportTTLDuration())
	assert.Equal(t, 5*time.Minute, cfg.Cache.SweepIntervalDuration())
	assert.Same(t, cfg, loader.Current())
}

func TestValidate_RejectsBadPort(t *testing.T) {
	loader := config.NewLoader(logger.NewNop())
	cfg, err := loader.Load()
	require.NoError(t, err)

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_TracingNeedsEndpoint(t *testing.T) {
	cfg := config.Config{
		Server:  config.ServerConfig{Port: 8080},
		Tracing: config.TracingConfig{Enabled: true},
	}

	assert.Error(t, cfg.Validate())
}

func TestScoringValidate(t *testing.T) {
	cases := []struct {
		name    string
		scoring config.ScoringConfig
		wantErr bool
	}{
		{"empty overrides pass", config.ScoringConfig{}, false},
		{
			"negative weight rejected",
			config.ScoringConfig{SeverityWeights: map[string]float64{"critical": -1}},
			true,
		},
		{
			"discount above one rejected",
			config.ScoringConfig{SocialDiscount: 1.5},
			true,
		},
		{
			"non-monotonic thresholds rejected",
			config.ScoringConfig{MediumThreshold: 60, HighThreshold: 40, CriticalThreshold: 80},
			true,
		},
		{
			"ordered thresholds pass",
			config.ScoringConfig{MediumThreshold: 30, HighThreshold: 55, CriticalThreshold: 85, SocialDiscount: 0.7},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.scoring.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

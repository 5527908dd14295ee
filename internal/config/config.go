package config

import (
	"fmt"
	"time"
)

// Config holds the application's configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Scoring    ScoringConfig    `mapstructure:"scoring"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // in seconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // in seconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // in seconds
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type TracingConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	JaegerEndpoint string  `mapstructure:"jaeger_endpoint"`
	ServiceName    string  `mapstructure:"service_name"`
	SamplingRate   float64 `mapstructure:"sampling_rate"`
}

type CacheConfig struct {
	ReportTTL     int `mapstructure:"report_ttl"`     // in seconds
	SweepInterval int `mapstructure:"sweep_interval"` // in seconds
}

// ReportTTLDuration returns the report cache TTL as a duration.
func (c *CacheConfig) ReportTTLDuration() time.Duration {
	return time.Duration(c.ReportTTL) * time.Second
}

// SweepIntervalDuration returns the cache sweep interval as a duration.
func (c *CacheConfig) SweepIntervalDuration() time.Duration {
	return time.Duration(c.SweepInterval) * time.Second
}

type MonitoringConfig struct {
	PprofEnabled bool `mapstructure:"pprof_enabled"`
}

// ScoringConfig carries optional overrides for the engine's weighting policy.
// Empty maps and zero values mean "use the built-in default"; the domain
// layer merges these over service.DefaultWeights().
type ScoringConfig struct {
	SeverityWeights   map[string]float64 `mapstructure:"severity_weights"`
	DataTypeWeights   map[string]float64 `mapstructure:"data_type_weights"`
	ExposureWeights   map[string]float64 `mapstructure:"exposure_weights"`
	SocialDiscount    float64            `mapstructure:"social_discount"`
	MediumThreshold   float64            `mapstructure:"medium_threshold"`
	HighThreshold     float64            `mapstructure:"high_threshold"`
	CriticalThreshold float64            `mapstructure:"critical_threshold"`
}

// Validate checks for essential configuration values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Tracing.Enabled && c.Tracing.JaegerEndpoint == "" {
		return fmt.Errorf("tracing.jaeger_endpoint is required when tracing is enabled")
	}
	return c.Scoring.Validate()
}

// Validate rejects scoring overrides that would break the engine's invariants:
// negative weights and non-monotonic risk-level thresholds.
func (s *ScoringConfig) Validate() error {
	for name, m := range map[string]map[string]float64{
		"severity_weights":  s.SeverityWeights,
		"data_type_weights": s.DataTypeWeights,
		"exposure_weights":  s.ExposureWeights,
	} {
		for key, w := range m {
			if w < 0 {
				return fmt.Errorf("scoring.%s[%s] must not be negative: %g", name, key, w)
			}
		}
	}
	if s.SocialDiscount < 0 || s.SocialDiscount > 1 {
		return fmt.Errorf("scoring.social_discount must be within [0,1]: %g", s.SocialDiscount)
	}

	// Thresholds are optional, but when any is set the trio must stay ordered.
	m, h, cr := s.MediumThreshold, s.HighThreshold, s.CriticalThreshold
	if m != 0 || h != 0 || cr != 0 {
		if !(m > 0 && h > m && cr > h && cr <= 100) {
			return fmt.Errorf("scoring thresholds must satisfy 0 < medium < high < critical <= 100, got %g/%g/%g", m, h, cr)
		}
	}
	return nil
}

package config

import (
	"context"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/veilscan/veilscan/pkg/logger"
)

// Loader reads configuration from file and environment and supports runtime
// reload of the scoring overrides when the config file changes on disk.
type Loader struct {
	v   *viper.Viper
	log logger.Logger

	mu  sync.RWMutex
	cfg *Config
}

// NewLoader creates a Loader with the service defaults registered.
func NewLoader(log logger.Logger) *Loader {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 15)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "veilscan")
	v.SetDefault("tracing.sampling_rate", 0.1)
	v.SetDefault("cache.report_ttl", 900)
	v.SetDefault("cache.sweep_interval", 300)
	v.SetDefault("monitoring.pprof_enabled", false)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/veilscan/")
	v.AddConfigPath(".")

	v.SetEnvPrefix("VEILSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, log: log.WithComponent("config")}
}

// Load reads and validates the configuration. A missing config file is not an
// error; defaults and environment variables still apply.
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg, err := l.unmarshal()
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cfg = cfg
	l.mu.Unlock()
	return cfg, nil
}

// Watch re-reads the config file whenever it changes and hands the refreshed
// scoring overrides to onScoring. Invalid edits are logged and skipped so a
// bad reload never takes down a running service.
func (l *Loader) Watch(ctx context.Context, onScoring func(ScoringConfig)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := l.unmarshal()
		if err != nil {
			l.log.Error(ctx, "Ignoring config reload", err, logger.String("file", e.Name))
			return
		}

		l.mu.Lock()
		l.cfg = cfg
		l.mu.Unlock()

		l.log.Info(ctx, "Scoring configuration reloaded", logger.String("file", e.Name))
		if onScoring != nil {
			onScoring(cfg.Scoring)
		}
	})
	l.v.WatchConfig()
}

// Current returns the most recently loaded configuration.
func (l *Loader) Current() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

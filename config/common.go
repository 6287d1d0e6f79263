package config

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// CommonConfig defines the logging and node-readiness settings shared by all commands
type CommonConfig struct {
	LogFormat string `mapstructure:"log-format"`
	LogLevel  string `mapstructure:"log-level"`
	// readiness polling against the node, see harness.WaitForNode
	RetrySleepTime    time.Duration `mapstructure:"retry-sleep-time"`
	MaxRetrySleepTime time.Duration `mapstructure:"max-retry-sleep-time"`
	MaxRetryTimes     uint          `mapstructure:"max-retry-times"`
}

func (cfg *CommonConfig) Validate() error {
	switch cfg.LogFormat {
	case "json", "auto", "console", "logfmt":
	default:
		return errors.New("log-format must be one of json, auto, console or logfmt")
	}

	if _, err := zap.ParseAtomicLevel(cfg.LogLevel); err != nil {
		return errors.New("log-level is not a valid zap level")
	}

	if cfg.RetrySleepTime <= 0 {
		return errors.New("retry-sleep-time must be positive")
	}

	if cfg.MaxRetrySleepTime < cfg.RetrySleepTime {
		return errors.New("max-retry-sleep-time must not be less than retry-sleep-time")
	}

	if cfg.MaxRetryTimes == 0 {
		return errors.New("max-retry-times must be positive")
	}

	return nil
}

func (cfg *CommonConfig) CreateLogger() (*zap.Logger, error) {
	return NewRootLogger(cfg.LogFormat, cfg.LogLevel)
}

func DefaultCommonConfig() CommonConfig {
	return CommonConfig{
		LogFormat:         "auto",
		LogLevel:          "info",
		RetrySleepTime:    time.Second,
		MaxRetrySleepTime: 10 * time.Second,
		MaxRetryTimes:     10,
	}
}

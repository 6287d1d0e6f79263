package config

import (
	"errors"
	"net"
)

const (
	defaultMetricsHost = "127.0.0.1"
	defaultMetricsPort = 2112
)

// MetricsConfig defines the prometheus exporter of long running commands
type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Host       string `mapstructure:"host"`
	ServerPort int    `mapstructure:"server-port"`
}

func (cfg *MetricsConfig) Validate() error {
	if cfg.ServerPort < 0 || cfg.ServerPort > 65535 {
		return errors.New("server-port must be between 0 and 65535")
	}

	if ip := net.ParseIP(cfg.Host); ip == nil && cfg.Host != "localhost" {
		return errors.New("host is not a valid IP address")
	}

	return nil
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:    false,
		Host:       defaultMetricsHost,
		ServerPort: defaultMetricsPort,
	}
}

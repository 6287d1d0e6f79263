package config

import (
	"fmt"
)

const (
	BroadcastModeDirect  = "direct"
	BroadcastModeChecked = "checked"
)

// HarnessConfig defines the behaviour of the dev/test utilities
type HarnessConfig struct {
	// BroadcastMode selects between posting directly and checking mempool
	// acceptance first, which makes re-broadcasts idempotent.
	BroadcastMode string `mapstructure:"broadcast-mode"`
}

func (cfg *HarnessConfig) Validate() error {
	if cfg.BroadcastMode != BroadcastModeDirect && cfg.BroadcastMode != BroadcastModeChecked {
		return fmt.Errorf("broadcast-mode must be either %s or %s", BroadcastModeDirect, BroadcastModeChecked)
	}

	return nil
}

func DefaultHarnessConfig() HarnessConfig {
	return HarnessConfig{
		BroadcastMode: BroadcastModeChecked,
	}
}

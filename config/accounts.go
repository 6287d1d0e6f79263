package config

import (
	"errors"
)

// AccountsConfig points at the fixtures file holding the test key material.
// Keys are never part of the config itself.
type AccountsConfig struct {
	FixturesFile string `mapstructure:"fixtures-file"`
}

func (cfg *AccountsConfig) Validate() error {
	if cfg.FixturesFile == "" {
		return errors.New("fixtures-file cannot be empty")
	}

	return nil
}

func DefaultAccountsConfig() AccountsConfig {
	return AccountsConfig{
		FixturesFile: "fixtures/regtest-accounts.yml",
	}
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/fiamma-labs/btctestkit/params"
)

// BTCConfig defines configuration for the Bitcoin node client. Endpoint,
// Username and Password override the values resolved from Preset when set.
type BTCConfig struct {
	Preset        string `mapstructure:"preset"`          // one of local, dev, signet, dev_regtest
	Endpoint      string `mapstructure:"endpoint"`        // bitcoind RPC url, e.g. http://127.0.0.1:18443
	DevBitcoinURL string `mapstructure:"dev-bitcoin-url"` // bitcoind url used by the dev regtest endpoint
	Username      string `mapstructure:"username"`
	Password      string `mapstructure:"password"`
	WalletName    string `mapstructure:"wallet-name"` // wallet that funds test addresses
}

// ResolvedBTC is the connection tuple derived from a BTCConfig.
type ResolvedBTC struct {
	Params   params.Params
	Endpoint string
	Username string
	Password string
}

func (cfg *BTCConfig) Validate() error {
	if _, err := params.FromName(cfg.Preset); err != nil {
		return err
	}

	if cfg.Endpoint != "" {
		if err := validateURL(cfg.Endpoint); err != nil {
			return fmt.Errorf("invalid endpoint: %w", err)
		}
	}

	if cfg.DevBitcoinURL != "" {
		if err := validateURL(cfg.DevBitcoinURL); err != nil {
			return fmt.Errorf("invalid dev-bitcoin-url: %w", err)
		}
	}

	if strings.Contains(cfg.WalletName, "/") {
		return errors.New("wallet-name must not contain '/'")
	}

	return nil
}

// PresetParams returns the preset named by cfg with its dev bitcoind url.
func (cfg *BTCConfig) PresetParams() (params.Params, error) {
	p, err := params.FromName(cfg.Preset)
	if err != nil {
		return params.Params{}, err
	}

	return p.WithDevBitcoinURL(cfg.DevBitcoinURL), nil
}

// Resolve combines the preset with the explicit overrides of cfg.
func (cfg *BTCConfig) Resolve() (*ResolvedBTC, error) {
	p, err := cfg.PresetParams()
	if err != nil {
		return nil, err
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		if endpoint, err = p.BitcoinURL(); err != nil {
			return nil, err
		}
	}

	username := cfg.Username
	if username == "" {
		if username, err = p.BitcoinUsername(); err != nil {
			return nil, err
		}
	}

	password := cfg.Password
	if password == "" {
		if password, err = p.BitcoinPassword(); err != nil {
			return nil, err
		}
	}

	return &ResolvedBTC{
		Params:   p,
		Endpoint: endpoint,
		Username: username,
		Password: password,
	}, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}

	return nil
}

const DefaultWalletName = "benefactor"

func DefaultBTCConfig() BTCConfig {
	return BTCConfig{
		Preset:     params.PresetLocal,
		WalletName: DefaultWalletName,
	}
}

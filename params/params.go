// Package params resolves the named environment presets used by the tooling
// into a network plus the bitcoind endpoint and credentials for it.
package params

import (
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/fiamma-labs/btctestkit/netparams"
	"github.com/fiamma-labs/btctestkit/types"
)

const (
	PresetLocal      = "local"
	PresetDev        = "dev"
	PresetSignet     = "signet"
	PresetDevRegtest = "dev_regtest"

	localEndpoint  = "http://127.0.0.1:43000"
	signetEndpoint = "http://127.0.0.1:53000"
	devEndpoint    = "http://dev.fiammachain.io:43000"

	regtestBitcoinURL = "http://127.0.0.1:18443"
	signetBitcoinURL  = "http://127.0.0.1:38332"
)

var (
	ErrUnknownPreset = errors.New("unknown environment preset")
	// ErrBitcoinURLUnset is returned when the dev endpoint resolves to a
	// regtest node but no node URL has been configured for it.
	ErrBitcoinURLUnset = errors.New("bitcoin node url not configured for dev endpoint")
)

var presets = map[string]Params{
	PresetLocal:      {Name: PresetLocal, Network: types.BtcRegtest, HTTPEndpoint: localEndpoint},
	PresetDev:        {Name: PresetDev, Network: types.BtcSignet, HTTPEndpoint: signetEndpoint},
	PresetSignet:     {Name: PresetSignet, Network: types.BtcSignet, HTTPEndpoint: signetEndpoint},
	PresetDevRegtest: {Name: PresetDevRegtest, Network: types.BtcRegtest, HTTPEndpoint: devEndpoint},
}

// Params is an immutable description of the environment a test run targets.
type Params struct {
	Name         string
	Network      types.SupportedBtcNetwork
	HTTPEndpoint string
	// DevBitcoinURL is the bitcoind URL used when HTTPEndpoint is the dev
	// endpoint on regtest. It is empty unless explicitly configured.
	DevBitcoinURL string
}

func New(network types.SupportedBtcNetwork, httpEndpoint string) Params {
	return Params{Network: network, HTTPEndpoint: httpEndpoint}
}

func Local() Params {
	return presets[PresetLocal]
}

func Dev() Params {
	return presets[PresetDev]
}

func Signet() Params {
	return presets[PresetSignet]
}

func DevRegtest() Params {
	return presets[PresetDevRegtest]
}

// FromName returns the preset registered under name.
func FromName(name string) (Params, error) {
	p, ok := presets[name]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q, should be one of %v", ErrUnknownPreset, name, Names())
	}

	return p, nil
}

// Names lists the registered presets in lexical order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// WithDevBitcoinURL returns a copy of p using url as the dev regtest node.
func (p Params) WithDevBitcoinURL(url string) Params {
	p.DevBitcoinURL = url
	return p
}

func (p Params) IsDev() bool {
	return p.HTTPEndpoint == devEndpoint
}

// ChainParams returns the btcd network parameters for p.Network.
func (p Params) ChainParams() (*chaincfg.Params, error) {
	return netparams.GetBTCParams(p.Network.String())
}

func (p Params) BitcoinURL() (string, error) {
	switch p.Network {
	case types.BtcRegtest:
		if !p.IsDev() {
			return regtestBitcoinURL, nil
		}
		if p.DevBitcoinURL == "" {
			return "", fmt.Errorf("%w: %s", ErrBitcoinURLUnset, p.HTTPEndpoint)
		}
		return p.DevBitcoinURL, nil
	case types.BtcSignet:
		return signetBitcoinURL, nil
	}

	return "", p.unsupported()
}

func (p Params) BitcoinUsername() (string, error) {
	switch p.Network {
	case types.BtcRegtest:
		return "test", nil
	case types.BtcSignet:
		return "fiamma", nil
	}

	return "", p.unsupported()
}

func (p Params) BitcoinPassword() (string, error) {
	switch p.Network {
	case types.BtcRegtest:
		return "1234", nil
	case types.BtcSignet:
		return "fiamma", nil
	}

	return "", p.unsupported()
}

func (p Params) unsupported() error {
	return fmt.Errorf("%w: %q", netparams.ErrUnsupportedNetwork, p.Network)
}

package netparams

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/fiamma-labs/btctestkit/types"
)

// ErrUnsupportedNetwork is returned for any network other than regtest or signet.
var ErrUnsupportedNetwork = errors.New("unsupported bitcoin network")

func GetBTCParams(net string) (*chaincfg.Params, error) {
	switch net {
	case types.BtcRegtest.String():
		return &chaincfg.RegressionNetParams, nil
	case types.BtcSignet.String():
		return &chaincfg.SigNetParams, nil
	}

	return nil, fmt.Errorf("%w: BTC network with name %s should be one of {%s, %s}",
		ErrUnsupportedNetwork, net, types.BtcRegtest.String(), types.BtcSignet.String())
}

// CheckSupported verifies that params describe one of the supported networks.
func CheckSupported(params *chaincfg.Params) error {
	if params == nil {
		return fmt.Errorf("%w: nil network params", ErrUnsupportedNetwork)
	}

	_, err := GetBTCParams(params.Name)

	return err
}

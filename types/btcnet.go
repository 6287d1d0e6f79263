package types

type SupportedBtcNetwork string

const (
	BtcRegtest SupportedBtcNetwork = "regtest"
	BtcSignet  SupportedBtcNetwork = "signet"
)

func (c SupportedBtcNetwork) String() string {
	return string(c)
}

// GetValidNetParams returns the set of network names the tooling has
// credentials and presets for. Mainnet and testnet are deliberately absent.
func GetValidNetParams() map[string]bool {
	params := map[string]bool{
		BtcRegtest.String(): true,
		BtcSignet.String():  true,
	}

	return params
}

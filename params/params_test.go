package params_test

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"github.com/fiamma-labs/btctestkit/netparams"
	"github.com/fiamma-labs/btctestkit/params"
	"github.com/fiamma-labs/btctestkit/types"
)

func TestPresets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		preset   params.Params
		network  types.SupportedBtcNetwork
		endpoint string
		url      string
		user     string
		pass     string
		isDev    bool
	}{
		{params.Local(), types.BtcRegtest, "http://127.0.0.1:43000", "http://127.0.0.1:18443", "test", "1234", false},
		{params.Dev(), types.BtcSignet, "http://127.0.0.1:53000", "http://127.0.0.1:38332", "fiamma", "fiamma", false},
		{params.Signet(), types.BtcSignet, "http://127.0.0.1:53000", "http://127.0.0.1:38332", "fiamma", "fiamma", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.preset.Name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.network, tt.preset.Network)
			require.Equal(t, tt.endpoint, tt.preset.HTTPEndpoint)
			require.Equal(t, tt.isDev, tt.preset.IsDev())

			url, err := tt.preset.BitcoinURL()
			require.NoError(t, err)
			require.Equal(t, tt.url, url)

			user, err := tt.preset.BitcoinUsername()
			require.NoError(t, err)
			require.Equal(t, tt.user, user)

			pass, err := tt.preset.BitcoinPassword()
			require.NoError(t, err)
			require.Equal(t, tt.pass, pass)

			// resolution is pure
			again, err := tt.preset.BitcoinURL()
			require.NoError(t, err)
			require.Equal(t, url, again)
		})
	}
}

func TestDevRegtestBitcoinURL(t *testing.T) {
	t.Parallel()

	p := params.DevRegtest()
	require.True(t, p.IsDev())
	require.Equal(t, types.BtcRegtest, p.Network)

	_, err := p.BitcoinURL()
	require.ErrorIs(t, err, params.ErrBitcoinURLUnset)

	configured := p.WithDevBitcoinURL("http://dev.example:18443")
	url, err := configured.BitcoinURL()
	require.NoError(t, err)
	require.Equal(t, "http://dev.example:18443", url)

	// the original value is untouched
	require.Empty(t, p.DevBitcoinURL)

	user, err := p.BitcoinUsername()
	require.NoError(t, err)
	require.Equal(t, "test", user)
}

func TestUnsupportedNetwork(t *testing.T) {
	t.Parallel()

	p := params.New(types.SupportedBtcNetwork("mainnet"), "http://127.0.0.1:1")

	_, err := p.BitcoinURL()
	require.ErrorIs(t, err, netparams.ErrUnsupportedNetwork)
	_, err = p.BitcoinUsername()
	require.ErrorIs(t, err, netparams.ErrUnsupportedNetwork)
	_, err = p.BitcoinPassword()
	require.ErrorIs(t, err, netparams.ErrUnsupportedNetwork)
	_, err = p.ChainParams()
	require.ErrorIs(t, err, netparams.ErrUnsupportedNetwork)
}

func TestFromName(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"dev", "dev_regtest", "local", "signet"}, params.Names())

	for _, name := range params.Names() {
		p, err := params.FromName(name)
		require.NoError(t, err)
		require.Equal(t, name, p.Name)
	}

	_, err := params.FromName("mainnet")
	require.ErrorIs(t, err, params.ErrUnknownPreset)
}

func TestChainParams(t *testing.T) {
	t.Parallel()

	net, err := params.Local().ChainParams()
	require.NoError(t, err)
	require.Equal(t, &chaincfg.RegressionNetParams, net)

	net, err = params.Signet().ChainParams()
	require.NoError(t, err)
	require.Equal(t, &chaincfg.SigNetParams, net)
}

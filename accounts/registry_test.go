package accounts_test

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"github.com/fiamma-labs/btctestkit/accounts"
	"github.com/fiamma-labs/btctestkit/netparams"
)

const fixturesPath = "../fixtures/regtest-accounts.yml"

func writeFixtures(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func TestLoadRegtestFixtures(t *testing.T) {
	t.Parallel()

	registry, err := accounts.Load(fixturesPath, &chaincfg.RegressionNetParams)
	require.NoError(t, err)

	expected := map[accounts.Role]string{
		accounts.RoleOperator:   "bcrt1pmdx8nnpllj3x750zzfqmjvedv34swuka06vda8qau6csnyx2hq9s6p89qf",
		accounts.RoleCommittee:  "bcrt1pzvm4mzqjld5quwmmampte0rzcdx9d9rju0h2k43x8aq44mh4937s6cvsrs",
		accounts.RoleChallenger: "bcrt1pcq4l9affnwx6xj733syn7alwqfg2u6auvyxptptrz9727slv52wqjvcrgc",
		accounts.RoleUserPegin:  "bcrt1phcnl4zcl2fu047pv4wx6y058v8u0n02at6lthvm7pcf2wrvjm5tqatn90k",
	}
	for role, addr := range expected {
		acc, err := registry.Get(role)
		require.NoError(t, err)
		require.Equal(t, addr, acc.Address.EncodeAddress(), role)
		require.NotNil(t, acc.PrivKey, role)
	}

	require.Equal(t, expected[accounts.RoleOperator], registry.Operator().Address.EncodeAddress())
	require.Equal(t, expected[accounts.RoleCommittee], registry.Committee().Address.EncodeAddress())
	require.Equal(t, expected[accounts.RoleChallenger], registry.Challenger().Address.EncodeAddress())
	require.Equal(t, expected[accounts.RoleUserPegin], registry.UserPegin().Address.EncodeAddress())
	require.Equal(t,
		"bcrt1pm3xnyl9mrl9vsehmldwrwq7jjvd0q78qzs2x42wqgu4jl6dvrtaq4uz8tm",
		registry.MinerAddress().EncodeAddress(),
	)
	require.Equal(t, &chaincfg.RegressionNetParams, registry.Network())
	require.Len(t, registry.All(), len(accounts.Roles))

	priv, pub, err := registry.OperatorKeyPair()
	require.NoError(t, err)
	require.Equal(t,
		"c30c8ad935145e4af50e0b00eb3b7804117d7aaf78186e87b2b604bfcb70322b",
		hex.EncodeToString(priv.Serialize()),
	)
	require.True(t, priv.PubKey().IsEqual(pub))

	_, err = registry.Get("auditor")
	require.ErrorIs(t, err, accounts.ErrUnknownRole)
}

func TestLoadRejectsWrongNetwork(t *testing.T) {
	t.Parallel()

	// the regtest miner address does not belong to signet
	_, err := accounts.Load(fixturesPath, &chaincfg.SigNetParams)
	require.ErrorIs(t, err, accounts.ErrWrongNetwork)

	_, err = accounts.Load(fixturesPath, &chaincfg.MainNetParams)
	require.ErrorIs(t, err, netparams.ErrUnsupportedNetwork)
}

func TestLoadRejectsMismatchedKeys(t *testing.T) {
	t.Parallel()

	// operator private key paired with the committee public key
	path := writeFixtures(t, `
miner-address: bcrt1pm3xnyl9mrl9vsehmldwrwq7jjvd0q78qzs2x42wqgu4jl6dvrtaq4uz8tm
accounts:
  operator:
    private-key: tprv8jzau9CfsdkXPkVBGi313RjQvsXggNwC4SZEBm3ohYAHQrHvBBG9GrPwMRWmzvB2UgkH7vEEjoMwia8kiY1jo6FzeshAfEw8d95ziJHYSTp
    public-key: 02ab8775b3cfd999a12d13ffab497a3db8cd18bbba04ee8ba62dbe08630eb17a23
  committee:
    public-key: 02ab8775b3cfd999a12d13ffab497a3db8cd18bbba04ee8ba62dbe08630eb17a23
  challenger:
    public-key: 02670a6454aa206ee2584e6cb2b61c4a4fe8bce673414712526471168e28c045b6
  user-pegin:
    public-key: 02a6ac32163539c16b6b5dbbca01b725b8e8acaa5f821ba42c80e7940062140d19
`)

	_, err := accounts.Load(path, &chaincfg.RegressionNetParams)
	require.ErrorIs(t, err, accounts.ErrKeyMismatch)
}

func TestLoadPublicOnlyAccounts(t *testing.T) {
	t.Parallel()

	path := writeFixtures(t, `
miner-address: bcrt1pm3xnyl9mrl9vsehmldwrwq7jjvd0q78qzs2x42wqgu4jl6dvrtaq4uz8tm
accounts:
  operator:
    public-key: 0385a34c3603c616afaa9da80ee2f354b8caf0308890193b4083cbdee09f998fd0
  committee:
    public-key: 02ab8775b3cfd999a12d13ffab497a3db8cd18bbba04ee8ba62dbe08630eb17a23
  challenger:
    public-key: 02670a6454aa206ee2584e6cb2b61c4a4fe8bce673414712526471168e28c045b6
  user-pegin:
    public-key: 02a6ac32163539c16b6b5dbbca01b725b8e8acaa5f821ba42c80e7940062140d19
`)

	registry, err := accounts.Load(path, &chaincfg.RegressionNetParams)
	require.NoError(t, err)
	require.Nil(t, registry.Operator().PrivKey)

	_, _, err = registry.OperatorKeyPair()
	require.ErrorIs(t, err, accounts.ErrNoPrivateKey)
}

func TestLoadAggregatesErrors(t *testing.T) {
	t.Parallel()

	path := writeFixtures(t, `
miner-address: not-an-address
accounts:
  operator:
    public-key: 0385a34c3603c616afaa9da80ee2f354b8caf0308890193b4083cbdee09f998fd0
  auditor:
    public-key: 0385a34c3603c616afaa9da80ee2f354b8caf0308890193b4083cbdee09f998fd0
`)

	_, err := accounts.Load(path, &chaincfg.RegressionNetParams)
	require.Error(t, err)
	require.ErrorIs(t, err, accounts.ErrUnknownRole)
	require.ErrorIs(t, err, accounts.ErrMissingAccount)
	require.ErrorContains(t, err, "invalid miner-address")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	path := writeFixtures(t, `
miner-address: bcrt1pm3xnyl9mrl9vsehmldwrwq7jjvd0q78qzs2x42wqgu4jl6dvrtaq4uz8tm
evm-receive-address: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
`)

	_, err := accounts.Load(path, &chaincfg.RegressionNetParams)
	require.ErrorContains(t, err, "failed to decode account fixtures")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := accounts.Load(filepath.Join(t.TempDir(), "nope.yml"), &chaincfg.RegressionNetParams)
	require.ErrorIs(t, err, os.ErrNotExist)
}

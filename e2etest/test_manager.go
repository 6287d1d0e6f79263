package e2etest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fiamma-labs/btctestkit/accounts"
	"github.com/fiamma-labs/btctestkit/btcclient"
	"github.com/fiamma-labs/btctestkit/config"
	"github.com/fiamma-labs/btctestkit/e2etest/container"
	"github.com/fiamma-labs/btctestkit/harness"
	"github.com/fiamma-labs/btctestkit/metrics"
)

var (
	eventuallyWaitTimeOut = 40 * time.Second
	regtestParams         = &chaincfg.RegressionNetParams
)

// matureWalletBlocks is enough blocks for the wallet to spend 10 coinbases.
const matureWalletBlocks = 110

func defaultTestConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Common.LogLevel = "debug"
	cfg.Common.RetrySleepTime = 500 * time.Millisecond
	cfg.Common.MaxRetrySleepTime = 2 * time.Second
	cfg.Common.MaxRetryTimes = 60
	cfg.BTC.Username = container.RPCUser
	cfg.BTC.Password = container.RPCPassword
	cfg.Accounts.FixturesFile = filepath.Join("..", "fixtures", "regtest-accounts.yml")

	return cfg
}

type TestManager struct {
	BitcoindHandler *BitcoindTestHandler
	Client          *btcclient.Client
	Harness         *harness.Harness
	Registry        *accounts.Registry
	Metrics         *metrics.HarnessMetrics
	Config          *config.Config
	manager         *container.Manager
}

// StartManager runs a regtest bitcoind, funds its wallet and returns a
// harness connected to it.
func StartManager(t *testing.T) *TestManager {
	manager, err := container.NewManager()
	require.NoError(t, err)

	btcHandler := NewBitcoindHandler(t, manager)
	bitcoind := btcHandler.Start()

	cfg := defaultTestConfig()
	_ = btcHandler.CreateWallet(cfg.BTC.WalletName)
	cfg.BTC.Endpoint = fmt.Sprintf("http://127.0.0.1:%s", bitcoind.GetPort("18443/tcp"))
	require.NoError(t, cfg.Validate())

	logger, err := cfg.CreateLogger()
	require.NoError(t, err)

	resolved, err := cfg.BTC.Resolve()
	require.NoError(t, err)

	client, err := btcclient.NewWallet(resolved, cfg.BTC.WalletName, logger)
	require.NoError(t, err)
	t.Cleanup(client.Stop)

	registry, err := accounts.Load(cfg.Accounts.FixturesFile, regtestParams)
	require.NoError(t, err)

	m := metrics.NewHarnessMetrics()
	h, err := harness.New(&cfg.Harness, &cfg.Common, logger, client, registry, m)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), eventuallyWaitTimeOut)
	defer cancel()
	_, err = h.WaitForNode(ctx)
	require.NoError(t, err)

	// the fixture miner address is not a wallet address, so the wallet
	// gets its spendable coins from blocks mined to one of its own.
	walletAddr, err := btcutil.DecodeAddress(btcHandler.GetNewAddress(cfg.BTC.WalletName), regtestParams)
	require.NoError(t, err)
	_, err = client.GenerateToAddress(matureWalletBlocks, walletAddr)
	require.NoError(t, err)

	return &TestManager{
		BitcoindHandler: btcHandler,
		Client:          client,
		Harness:         h,
		Registry:        registry,
		Metrics:         m,
		Config:          cfg,
		manager:         manager,
	}
}

func (tm *TestManager) Stop() {
	tm.Client.Stop()
	_ = tm.manager.ClearResources()
}

// newClient opens a second, non-wallet client to the same node.
func (tm *TestManager) newClient(t *testing.T) *btcclient.Client {
	resolved, err := tm.Config.BTC.Resolve()
	require.NoError(t, err)

	client, err := btcclient.New(resolved, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(client.Stop)

	return client
}

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fiamma-labs/btctestkit/accounts"
	"github.com/fiamma-labs/btctestkit/btcclient"
	"github.com/fiamma-labs/btctestkit/config"
	"github.com/fiamma-labs/btctestkit/harness"
	"github.com/fiamma-labs/btctestkit/metrics"
)

// environment is everything a node-facing command needs. It lives for one
// command invocation.
type environment struct {
	cfg     config.Config
	logger  *zap.Logger
	client  *btcclient.Client
	harness *harness.Harness

	metricsServer *http.Server
}

func loadConfig(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfgFile, err := cmd.Flags().GetString(configFileFlag)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to read flag %s: %w", configFileFlag, err)
	}

	cfg, err := config.New(cfgFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	rootLogger, err := cfg.CreateLogger()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, rootLogger, nil
}

func newEnvironment(cmd *cobra.Command) (*environment, error) {
	cfg, rootLogger, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	resolved, err := cfg.BTC.Resolve()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bitcoind endpoint: %w", err)
	}

	var client *btcclient.Client
	if cfg.BTC.WalletName != "" {
		client, err = btcclient.NewWallet(resolved, cfg.BTC.WalletName, rootLogger)
	} else {
		client, err = btcclient.New(resolved, rootLogger)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open BTC client: %w", err)
	}

	registry, err := accounts.Load(cfg.Accounts.FixturesFile, client.Network())
	if err != nil {
		client.Stop()
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	harnessMetrics := metrics.NewHarnessMetrics()
	h, err := harness.New(&cfg.Harness, &cfg.Common, rootLogger, client, registry, harnessMetrics)
	if err != nil {
		client.Stop()
		return nil, fmt.Errorf("failed to create harness: %w", err)
	}

	env := &environment{
		cfg:     cfg,
		logger:  rootLogger,
		client:  client,
		harness: h,
	}

	if cfg.Metrics.Enabled {
		addr := fmt.Sprintf("%s:%d", cfg.Metrics.Host, cfg.Metrics.ServerPort)
		env.metricsServer = metrics.Start(addr, harnessMetrics.Registry, rootLogger)
	}

	return env, nil
}

func (e *environment) close() {
	if e.metricsServer != nil {
		_ = e.metricsServer.Close()
	}
	e.client.Stop()
	_ = e.logger.Sync()
}

// interruptContext is cancelled on SIGINT or SIGTERM.
func interruptContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

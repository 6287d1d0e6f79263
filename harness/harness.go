package harness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"github.com/fiamma-labs/btctestkit/accounts"
	"github.com/fiamma-labs/btctestkit/btcclient"
	"github.com/fiamma-labs/btctestkit/config"
	"github.com/fiamma-labs/btctestkit/metrics"
	"github.com/fiamma-labs/btctestkit/retrywrap"
)

// Harness drives a regtest or signet node for integration tests: it mines,
// funds test addresses, broadcasts and picks UTXOs. Calls are synchronous
// and a Harness holds no state besides its collaborators.
type Harness struct {
	logger   *zap.SugaredLogger
	client   btcclient.BTCClient
	registry *accounts.Registry
	metrics  *metrics.HarnessMetrics

	mode              BroadcastMode
	retrySleepTime    time.Duration
	maxRetrySleepTime time.Duration
	maxRetryTimes     uint
}

func New(
	cfg *config.HarnessConfig,
	common *config.CommonConfig,
	parentLogger *zap.Logger,
	client btcclient.BTCClient,
	registry *accounts.Registry,
	metrics *metrics.HarnessMetrics,
) (*Harness, error) {
	if client == nil || registry == nil || metrics == nil {
		return nil, errors.New("harness needs a client, an account registry and metrics")
	}

	mode, err := ParseBroadcastMode(cfg.BroadcastMode)
	if err != nil {
		return nil, err
	}

	if err := client.CheckNetwork(registry.Network()); err != nil {
		return nil, fmt.Errorf("accounts do not match the node: %w", err)
	}

	return &Harness{
		logger:            parentLogger.With(zap.String("module", "harness")).Sugar(),
		client:            client,
		registry:          registry,
		metrics:           metrics,
		mode:              mode,
		retrySleepTime:    common.RetrySleepTime,
		maxRetrySleepTime: common.MaxRetrySleepTime,
		maxRetryTimes:     common.MaxRetryTimes,
	}, nil
}

func (h *Harness) Registry() *accounts.Registry {
	return h.registry
}

// Mode is the broadcast mode used by BroadcastDefault.
func (h *Harness) Mode() BroadcastMode {
	return h.mode
}

// WaitForNode polls getblockcount until the node answers, ctx is done or
// the retry budget from the common config is spent.
func (h *Harness) WaitForNode(ctx context.Context) (int64, error) {
	var height int64
	err := retrywrap.Do(func() error {
		var err error
		height, err = h.client.GetBlockCount()

		return err
	},
		retry.Context(ctx),
		retry.Delay(h.retrySleepTime),
		retry.MaxDelay(h.maxRetrySleepTime),
		retry.Attempts(h.maxRetryTimes),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			h.logger.Debugf("node is not ready (attempt %d): %v", n+1, err)
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("node did not become ready: %w", err)
	}

	h.logger.Infof("node is ready at height %d", height)

	return height, nil
}

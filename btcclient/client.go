package btcclient

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/zap"

	"github.com/fiamma-labs/btctestkit/config"
	"github.com/fiamma-labs/btctestkit/netparams"
)

var _ BTCClient = &Client{}

// Client is a synchronous JSON-RPC client to a bitcoind node. Each call
// blocks until the node answers; there is no client side retry or batching.
type Client struct {
	*rpcclient.Client

	params     *chaincfg.Params
	walletName string
	logger     *zap.SugaredLogger
}

// New creates a client for the node described by cfg. Wallet RPCs such as
// listunspent need a wallet-scoped client, see NewWallet.
func New(cfg *config.ResolvedBTC, parentLogger *zap.Logger) (*Client, error) {
	return newClient(cfg, "", parentLogger.With(zap.String("module", "btcclient")))
}

// NewWallet creates a client whose requests are scoped to walletName
// through the /wallet/<name> path. Non-wallet RPCs keep working on it.
func NewWallet(cfg *config.ResolvedBTC, walletName string, parentLogger *zap.Logger) (*Client, error) {
	if walletName == "" {
		return nil, ErrWalletRequired
	}

	return newClient(cfg, walletName, parentLogger.With(zap.String("module", "btcclient_wallet")))
}

func newClient(cfg *config.ResolvedBTC, walletName string, logger *zap.Logger) (*Client, error) {
	net, err := cfg.Params.ChainParams()
	if err != nil {
		return nil, err
	}

	host, disableTLS, err := splitEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	connCfg := &rpcclient.ConnConfig{
		Host:         rpcHostURL(host, walletName),
		User:         cfg.Username,
		Pass:         cfg.Password,
		Params:       net.Name,
		HTTPPostMode: true,
		DisableTLS:   disableTLS,
	}

	rpcClient, err := rpcclient.New(connCfg, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rpc client to BTC: %w", err)
	}

	c := &Client{
		Client:     rpcClient,
		params:     net,
		walletName: walletName,
		logger:     logger.Sugar(),
	}
	c.logger.Debugf("created bitcoind client for %s on %s", connCfg.Host, net.Name)

	return c, nil
}

// splitEndpoint turns http(s)://host:port[/path] into the host form
// rpcclient expects and reports whether TLS must be disabled.
func splitEndpoint(endpoint string) (string, bool, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("invalid bitcoind endpoint %q: %w", endpoint, err)
	}

	switch u.Scheme {
	case "http":
		return u.Host + strings.TrimSuffix(u.Path, "/"), true, nil
	case "https":
		return u.Host + strings.TrimSuffix(u.Path, "/"), false, nil
	}

	return "", false, fmt.Errorf("invalid bitcoind endpoint %q: scheme must be http or https", endpoint)
}

func rpcHostURL(host, walletName string) string {
	if len(walletName) > 0 {
		return host + "/wallet/" + walletName
	}

	return host
}

// Network returns the network the client was configured for.
func (c *Client) Network() *chaincfg.Params {
	return c.params
}

// WalletName returns the wallet the client is scoped to, or "" for a node-level client.
func (c *Client) WalletName() string {
	return c.walletName
}

// CheckNetwork fails when net is not the network of the node behind c. It
// never talks to the node.
func (c *Client) CheckNetwork(net *chaincfg.Params) error {
	if err := netparams.CheckSupported(net); err != nil {
		return err
	}
	if net.Name != c.params.Name {
		return fmt.Errorf("%w: requested %s, client is on %s", ErrNetworkMismatch, net.Name, c.params.Name)
	}

	return nil
}

func (c *Client) requireWallet(call string) error {
	if c.walletName == "" {
		return fmt.Errorf("%s: %w", call, ErrWalletRequired)
	}

	return nil
}

func (c *Client) Stop() {
	c.Shutdown()
	c.WaitForShutdown()
}

var errNilArgument = errors.New("nil argument")

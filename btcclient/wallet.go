package btcclient

import (
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// maxConfirmations is the upper bound bitcoind uses as default for listunspent.
const maxConfirmations = 9999999

// GenerateToAddress mines numBlocks blocks paying the coinbase to addr.
func (c *Client) GenerateToAddress(numBlocks int64, addr btcutil.Address) ([]*chainhash.Hash, error) {
	if numBlocks <= 0 {
		return nil, fmt.Errorf("generate %d blocks: %w", numBlocks, ErrInvalidBlockCount)
	}

	hashes, err := c.Client.GenerateToAddress(numBlocks, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %d blocks to %s: %w", numBlocks, addr, err)
	}

	return hashes, nil
}

// SendToAddress pays amount to addr from the node wallet with a single output.
func (c *Client) SendToAddress(addr btcutil.Address, amount btcutil.Amount) (*chainhash.Hash, error) {
	txid, err := c.Client.SendToAddress(addr, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to send %v to %s: %w", amount, addr, err)
	}

	return txid, nil
}

// GetUnspent lists wallet outputs paying to addr with at least minConf
// confirmations.
func (c *Client) GetUnspent(addr btcutil.Address, minConf int) ([]btcjson.ListUnspentResult, error) {
	if err := c.requireWallet("listunspent"); err != nil {
		return nil, err
	}

	utxos, err := c.Client.ListUnspentMinMaxAddresses(minConf, maxConfirmations, []btcutil.Address{addr})
	if err != nil {
		return nil, fmt.Errorf("failed to list unspent outputs of %s: %w", addr, err)
	}

	return utxos, nil
}

package btcclient

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

type TxStatus int

const (
	TxNotFound TxStatus = iota
	TxInMemPool
	TxInChain
)

const (
	txNotFoundErrMsgBitcoind = "No such mempool or blockchain transaction"
)

func (s TxStatus) String() string {
	switch s {
	case TxInMemPool:
		return "mempool"
	case TxInChain:
		return "chain"
	default:
		return "not-found"
	}
}

// GetTx fetches a transaction by id. The node needs txindex for
// transactions outside the mempool and the wallet.
func (c *Client) GetTx(txHash *chainhash.Hash) (*wire.MsgTx, error) {
	tx, err := c.Client.GetRawTransaction(txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", txHash, err)
	}

	return tx.MsgTx(), nil
}

func (c *Client) GetTxInfo(txHash *chainhash.Hash) (*btcjson.TxRawResult, error) {
	info, err := c.Client.GetRawTransactionVerbose(txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction info %s: %w", txHash, err)
	}

	return info, nil
}

// GetTxStatus reports whether a transaction is unknown, waiting in the
// mempool or confirmed.
func (c *Client) GetTxStatus(txHash *chainhash.Hash) (TxStatus, error) {
	info, err := c.Client.GetRawTransactionVerbose(txHash)
	if err != nil {
		if strings.Contains(err.Error(), txNotFoundErrMsgBitcoind) {
			return TxNotFound, nil
		}

		return TxNotFound, fmt.Errorf("failed to get transaction status %s: %w", txHash, err)
	}

	if info.Confirmations > 0 {
		return TxInChain, nil
	}

	return TxInMemPool, nil
}

// GetBlockHeight reads the height a block commits to in its coinbase
// script (BIP-34).
func (c *Client) GetBlockHeight(blockHash *chainhash.Hash) (int32, error) {
	block, err := c.Client.GetBlock(blockHash)
	if err != nil {
		return 0, fmt.Errorf("failed to get block %s: %w", blockHash, err)
	}

	if len(block.Transactions) == 0 {
		return 0, fmt.Errorf("block %s: %w", blockHash, ErrEmptyBlock)
	}

	height, err := blockchain.ExtractCoinbaseHeight(btcutil.NewTx(block.Transactions[0]))
	if err != nil {
		return 0, fmt.Errorf("failed to extract coinbase height of block %s: %w", blockHash, err)
	}

	return height, nil
}

func (c *Client) GetBlockHeaderInfo(blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error) {
	header, err := c.Client.GetBlockHeaderVerbose(blockHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get block header %s: %w", blockHash, err)
	}

	return header, nil
}

func (c *Client) GetBlockHashByHeight(height int64) (*chainhash.Hash, error) {
	hash, err := c.Client.GetBlockHash(height)
	if err != nil {
		return nil, fmt.Errorf("failed to get block hash at height %d: %w", height, err)
	}

	return hash, nil
}

// GetBlockMedianTime returns the median time past of the block at height.
func (c *Client) GetBlockMedianTime(height int64) (int64, error) {
	stats, err := c.Client.GetBlockStats(height, &[]string{"mediantime"})
	if err != nil {
		return 0, fmt.Errorf("failed to get block stats at height %d: %w", height, err)
	}

	if stats.MedianTime == 0 {
		return 0, fmt.Errorf("height %d: %w", height, ErrMissingMedianTime)
	}

	return stats.MedianTime, nil
}

func (c *Client) GetBestBlockMedianTime() (int64, error) {
	height, err := c.Client.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get block count: %w", err)
	}

	return c.GetBlockMedianTime(height)
}

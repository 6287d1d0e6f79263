package btcclient

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// RejectReason classifies a testmempoolaccept reject reason.
type RejectReason int

const (
	RejectOther RejectReason = iota
	RejectAlreadyInMempool
	RejectAlreadyKnown
	RejectOutputsInUTXOSet
)

var rejectPatterns = []struct {
	pattern string
	reason  RejectReason
}{
	{"txn-already-in-mempool", RejectAlreadyInMempool},
	{"txn-already-known", RejectAlreadyKnown},
	{"Transaction outputs already in utxo set", RejectOutputsInUTXOSet},
}

// ClassifyRejectReason maps a node reject reason onto the rejections
// that mean the transaction was already accepted before.
func ClassifyRejectReason(reason string) RejectReason {
	for _, p := range rejectPatterns {
		if strings.Contains(reason, p.pattern) {
			return p.reason
		}
	}

	return RejectOther
}

// AlreadyKnown is true for rejections caused by an earlier broadcast of
// the same transaction.
func (r RejectReason) AlreadyKnown() bool {
	return r != RejectOther
}

func (r RejectReason) String() string {
	switch r {
	case RejectAlreadyInMempool:
		return "already-in-mempool"
	case RejectAlreadyKnown:
		return "already-known"
	case RejectOutputsInUTXOSet:
		return "outputs-already-in-utxo-set"
	default:
		return "other"
	}
}

// PostTx submits tx with sendrawtransaction. A transaction the node
// reports as already confirmed counts as posted.
func (c *Client) PostTx(tx *wire.MsgTx) (*chainhash.Hash, error) {
	if tx == nil {
		return nil, fmt.Errorf("post tx: %w", errNilArgument)
	}

	txid, err := c.Client.SendRawTransaction(tx, false)
	if err != nil {
		var rpcErr *btcjson.RPCError
		if errors.As(err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCTxAlreadyInChain {
			hash := tx.TxHash()
			c.logger.Infof("tx %s is already in chain", hash)

			return &hash, nil
		}

		return nil, fmt.Errorf("failed to send raw transaction: %w", err)
	}

	return txid, nil
}

// CheckTx asks the node whether tx would be accepted into the mempool.
func (c *Client) CheckTx(tx *wire.MsgTx) (*chainhash.Hash, error) {
	txid, _, err := c.checkTx(tx)

	return txid, err
}

// CheckAndPostTx runs CheckTx and posts tx unless the node already has it.
func (c *Client) CheckAndPostTx(tx *wire.MsgTx) (*chainhash.Hash, error) {
	txid, reason, err := c.checkTx(tx)
	if err != nil {
		return nil, err
	}

	if reason.AlreadyKnown() {
		return txid, nil
	}

	return c.PostTx(tx)
}

func (c *Client) checkTx(tx *wire.MsgTx) (*chainhash.Hash, RejectReason, error) {
	if tx == nil {
		return nil, RejectOther, fmt.Errorf("check tx: %w", errNilArgument)
	}

	results, err := c.Client.TestMempoolAccept([]*wire.MsgTx{tx}, 0)
	if err != nil {
		c.logger.Errorf("failed to test mempool accept: %v", err)

		return nil, RejectOther, fmt.Errorf("failed to test mempool accept: %w", err)
	}

	if len(results) == 0 {
		c.logger.Errorf("testmempoolaccept returned an empty result for tx %s", tx.TxHash())

		return nil, RejectOther, ErrEmptyMempoolAccept
	}

	res := results[0]
	txid, err := chainhash.NewHashFromStr(res.Txid)
	if err != nil {
		return nil, RejectOther, fmt.Errorf("invalid txid %q in testmempoolaccept result: %w", res.Txid, err)
	}

	if res.Allowed {
		return txid, RejectOther, nil
	}

	reason := ClassifyRejectReason(res.RejectReason)
	if reason.AlreadyKnown() {
		c.logger.Infof("tx %s is already known: %s", txid, res.RejectReason)

		return txid, reason, nil
	}

	rejected := newRejectedError(txid, res.RejectReason)
	c.logger.Errorf("%v", rejected)

	return nil, reason, rejected
}

package harness

import (
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/fiamma-labs/btctestkit/config"
	"github.com/fiamma-labs/btctestkit/metrics"
	"github.com/fiamma-labs/btctestkit/utils"
)

// BroadcastMode selects how a transaction reaches the node.
type BroadcastMode string

const (
	// BroadcastDirect posts with sendrawtransaction and nothing else.
	BroadcastDirect BroadcastMode = config.BroadcastModeDirect
	// BroadcastChecked runs testmempoolaccept first and skips the post when
	// the node already knows the transaction.
	BroadcastChecked BroadcastMode = config.BroadcastModeChecked
)

func ParseBroadcastMode(s string) (BroadcastMode, error) {
	switch m := BroadcastMode(s); m {
	case BroadcastDirect, BroadcastChecked:
		return m, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownBroadcastMode, s)
}

// Broadcast submits tx in the given mode and checks that the node reports
// the txid computed locally.
func (h *Harness) Broadcast(tx *wire.MsgTx, mode BroadcastMode) (*chainhash.Hash, error) {
	txHex, err := utils.TxToHex(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize tx: %w", err)
	}

	computed := tx.TxHash()
	weight := blockchain.GetTransactionWeight(btcutil.NewTx(tx))
	h.logger.Infof("broadcast txid: %s, tx_weight: %d, tx_hex: %s", computed, weight, txHex)

	var txid *chainhash.Hash
	switch mode {
	case BroadcastDirect:
		txid, err = h.client.PostTx(tx)
	case BroadcastChecked:
		txid, err = h.client.CheckAndPostTx(tx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBroadcastMode, mode)
	}
	if err != nil {
		h.metrics.BroadcastsCounterVec.WithLabelValues(string(mode), metrics.BroadcastResultFailure).Inc()

		return nil, fmt.Errorf("failed to broadcast tx %s: %w", computed, err)
	}

	if !txid.IsEqual(&computed) {
		h.metrics.BroadcastsCounterVec.WithLabelValues(string(mode), metrics.BroadcastResultFailure).Inc()

		return nil, fmt.Errorf("%w: node returned %s, computed %s", ErrTxidMismatch, txid, computed)
	}

	h.metrics.BroadcastsCounterVec.WithLabelValues(string(mode), metrics.BroadcastResultSuccess).Inc()
	h.logger.Infof("Successfully broadcast tx, txid: %s", txid)

	return txid, nil
}

// BroadcastDefault broadcasts in the mode set by the harness config.
func (h *Harness) BroadcastDefault(tx *wire.MsgTx) (*chainhash.Hash, error) {
	return h.Broadcast(tx, h.mode)
}

// MustBroadcast posts tx directly and panics on any failure. Meant for
// test code where a failed broadcast is a broken fixture.
func (h *Harness) MustBroadcast(tx *wire.MsgTx) *chainhash.Hash {
	txid, err := h.Broadcast(tx, BroadcastDirect)
	if err != nil {
		panic(err)
	}

	return txid
}

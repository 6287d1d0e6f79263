package btcclient

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/fiamma-labs/btctestkit/keys"
	"github.com/fiamma-labs/btctestkit/types"
)

// ScanTxOutResult is the answer of `scantxoutset start`.
type ScanTxOutResult struct {
	Success     bool               `json:"success"`
	TxOuts      int64              `json:"txouts"`
	Height      int64              `json:"height"`
	BestBlock   string             `json:"bestblock"`
	Unspents    []ScanTxOutUnspent `json:"unspents"`
	TotalAmount float64            `json:"total_amount"`
}

type ScanTxOutUnspent struct {
	TxID         string  `json:"txid"`
	Vout         uint32  `json:"vout"`
	ScriptPubKey string  `json:"scriptPubKey"`
	Desc         string  `json:"desc"`
	Amount       float64 `json:"amount"`
	Coinbase     bool    `json:"coinbase"`
	Height       int64   `json:"height"`
}

type scanObject struct {
	Desc string `json:"desc"`
}

// UTXOs converts the unspents of r into records with satoshi amounts,
// keeping the order the node returned them in.
func (r *ScanTxOutResult) UTXOs() ([]*types.UTXO, error) {
	utxos := make([]*types.UTXO, 0, len(r.Unspents))
	for _, u := range r.Unspents {
		txid, err := chainhash.NewHashFromStr(u.TxID)
		if err != nil {
			return nil, fmt.Errorf("invalid txid %q: %w", u.TxID, err)
		}

		amount, err := btcutil.NewAmount(u.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %v of %s:%d: %w", u.Amount, u.TxID, u.Vout, err)
		}

		script, err := hex.DecodeString(u.ScriptPubKey)
		if err != nil {
			return nil, fmt.Errorf("invalid script of %s:%d: %w", u.TxID, u.Vout, err)
		}

		utxos = append(utxos, &types.UTXO{
			TxID:         *txid,
			Vout:         u.Vout,
			Amount:       amount,
			ScriptPubKey: script,
			Descriptor:   u.Desc,
			Height:       u.Height,
			Coinbase:     u.Coinbase,
		})
	}

	return utxos, nil
}

// ScanTxOutSet scans the chainstate for outputs spendable by the key-path
// taproot descriptor of pub. Only one scan can run on a node at a time.
func (c *Client) ScanTxOutSet(pub *btcec.PublicKey) (*ScanTxOutResult, error) {
	if pub == nil {
		return nil, fmt.Errorf("scantxoutset: %w", errNilArgument)
	}

	desc := keys.TaprootDescriptor(pub)
	action, err := json.Marshal("start")
	if err != nil {
		return nil, err
	}
	objects, err := json.Marshal([]scanObject{{Desc: desc}})
	if err != nil {
		return nil, err
	}

	raw, err := c.Client.RawRequest("scantxoutset", []json.RawMessage{action, objects})
	if err != nil {
		return nil, fmt.Errorf("failed to scan utxo set for %s: %w", desc, err)
	}

	var res ScanTxOutResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode scantxoutset result: %w", err)
	}

	if !res.Success {
		return nil, fmt.Errorf("%w: %s", ErrScanAborted, desc)
	}

	c.logger.Debugf("scanned %d outputs for %s, found %d unspent", res.TxOuts, desc, len(res.Unspents))

	return &res, nil
}

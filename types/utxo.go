package types

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// UTXO is an unspent output as reported by a UTXO-set scan. Amounts are kept
// in satoshis so comparisons never go through floating point BTC values.
type UTXO struct {
	TxID         chainhash.Hash
	Vout         uint32
	Amount       btcutil.Amount
	ScriptPubKey []byte
	Descriptor   string
	Height       int64
	Coinbase     bool
}

// OutPoint returns the wire outpoint referencing this output.
func (u *UTXO) OutPoint() *wire.OutPoint {
	return wire.NewOutPoint(&u.TxID, u.Vout)
}

// TxOut returns the output as it would appear in a previous-output fetcher.
func (u *UTXO) TxOut() *wire.TxOut {
	return wire.NewTxOut(int64(u.Amount), u.ScriptPubKey)
}

func (u *UTXO) String() string {
	return fmt.Sprintf("%s:%d (%v)", u.TxID, u.Vout, u.Amount)
}

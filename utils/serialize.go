package utils

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

// SerializeMsgTx serializes wire.MsgTx to bytes, with witness data when present
func SerializeMsgTx(tx *wire.MsgTx) ([]byte, error) {
	var txBuf bytes.Buffer
	txBuf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&txBuf); err != nil {
		return nil, err
	}

	return txBuf.Bytes(), nil
}

// DeserializeMsgTx deserializes bytes to wire.MsgTx
func DeserializeMsgTx(data []byte) (*wire.MsgTx, error) {
	var tx wire.MsgTx

	if err := tx.Deserialize(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return &tx, nil
}

// TxToHex returns the consensus encoding of tx as lower case hex, the form
// sendrawtransaction and testmempoolaccept take.
func TxToHex(tx *wire.MsgTx) (string, error) {
	raw, err := SerializeMsgTx(tx)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(raw), nil
}

func TxFromHex(txHex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction hex: %w", err)
	}

	tx, err := DeserializeMsgTx(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction encoding: %w", err)
	}

	return tx, nil
}

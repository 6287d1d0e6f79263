package btcclient

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// ErrNetworkMismatch is returned before any RPC when a caller asks for a
	// network different from the one the client talks to.
	ErrNetworkMismatch = errors.New("network mismatch")
	// ErrWalletRequired is returned by wallet RPCs on a client without a wallet path.
	ErrWalletRequired = errors.New("rpc client is not scoped to a wallet")
	// ErrInvalidBlockCount is returned when asked to mine zero or fewer blocks.
	ErrInvalidBlockCount = errors.New("block count must be positive")
	// ErrEmptyMempoolAccept is returned when testmempoolaccept yields no result.
	ErrEmptyMempoolAccept = errors.New("testmempoolaccept returned no result")
	// ErrTxRejected is matched by every *RejectedError.
	ErrTxRejected = errors.New("transaction rejected by mempool")
	// ErrMissingMedianTime is returned when getblockstats has no median time.
	ErrMissingMedianTime = errors.New("block stats carry no median time")
	// ErrEmptyBlock is returned when a block has no coinbase to read a height from.
	ErrEmptyBlock = errors.New("block has no transactions")
	// ErrScanAborted is returned when scantxoutset reports success=false. Its
	// unspents are partial and must not be read as an empty address.
	ErrScanAborted = errors.New("utxo set scan did not complete")
)

// RejectedError carries the node's reason for refusing a transaction.
type RejectedError struct {
	TxID   string
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("testmempoolaccept isn't allowed, txid: %s, reason: %s", e.TxID, e.Reason)
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrTxRejected
}

func newRejectedError(txid *chainhash.Hash, reason string) *RejectedError {
	return &RejectedError{TxID: txid.String(), Reason: reason}
}

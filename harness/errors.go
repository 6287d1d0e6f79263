package harness

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

var (
	// ErrNoUTXOAvailable means the scanned address had no unspent output at all.
	ErrNoUTXOAvailable = errors.New("no utxo available")

	// ErrNoSufficientUTXO means no unspent output reached the target amount.
	ErrNoSufficientUTXO = errors.New("no utxo with sufficient amount")

	// ErrTxidMismatch means the node answered a broadcast with a txid other
	// than the one computed from the transaction bytes.
	ErrTxidMismatch = errors.New("broadcast txid does not match computed txid")

	// ErrNoBlocksMined means generatetoaddress succeeded but returned fewer
	// block hashes than requested.
	ErrNoBlocksMined = errors.New("node returned fewer block hashes than requested")

	ErrInvalidOutputCount   = errors.New("number of outputs must be positive")
	ErrUnknownBroadcastMode = errors.New("unknown broadcast mode")
)

// FundingTriggeredError is returned by UTXO selection after it funded the
// address because nothing usable was found. The funding block is already
// mined, so the caller only has to select again.
type FundingTriggeredError struct {
	Cause   error
	Address string
	Target  btcutil.Amount
	// amount of each funding output
	Amount  btcutil.Amount
	Outputs int
}

func (e *FundingTriggeredError) Error() string {
	return fmt.Sprintf("%v for %s (target %v): sent %d outputs of %v to it, please rerun",
		e.Cause, e.Address, e.Target, e.Outputs, e.Amount)
}

func (e *FundingTriggeredError) Unwrap() error {
	return e.Cause
}

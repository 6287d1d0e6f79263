package harness

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/fiamma-labs/btctestkit/btcclient"
	"github.com/fiamma-labs/btctestkit/keys"
	"github.com/fiamma-labs/btctestkit/types"
)

// SelectUTXO returns the first output, in scan order, paying at least
// target to the key-path taproot address of pub.
//
// When the address holds no output, or none large enough, SelectUTXO funds
// it with AutoFundOutputs outputs of max(target, MinFundingAmount), mines a
// block and returns a *FundingTriggeredError. The next call can then
// succeed. Nothing is retried automatically.
func (h *Harness) SelectUTXO(pub *btcec.PublicKey, target btcutil.Amount, net *chaincfg.Params) (*types.UTXO, error) {
	if pub == nil {
		return nil, errors.New("select utxo: nil public key")
	}

	if err := h.client.CheckNetwork(net); err != nil {
		return nil, err
	}

	addr, err := keys.TaprootAddress(pub, net)
	if err != nil {
		return nil, err
	}
	h.logger.Infof("selecting utxo of at least %v for %s", target, addr)

	res, err := h.client.ScanTxOutSet(pub)
	if err != nil {
		return nil, fmt.Errorf("failed to scan utxos of %s (target %v): %w", addr, target, err)
	}

	if !res.Success {
		return nil, fmt.Errorf("failed to scan utxos of %s (target %v): %w", addr, target, btcclient.ErrScanAborted)
	}

	utxos, err := res.UTXOs()
	if err != nil {
		return nil, fmt.Errorf("failed to read utxos of %s (target %v): %w", addr, target, err)
	}
	h.logger.Infof("found %d unspent outputs at %s", len(utxos), addr)

	if len(utxos) == 0 {
		return nil, h.autoFund(addr, target, ErrNoUTXOAvailable)
	}

	for _, utxo := range utxos {
		if utxo.Amount >= target {
			h.metrics.SelectedUTXOsCounter.Inc()
			h.metrics.SelectedAmountObserver.Observe(utxo.Amount.ToBTC())

			return utxo, nil
		}
	}

	return nil, h.autoFund(addr, target, ErrNoSufficientUTXO)
}

func (h *Harness) autoFund(addr btcutil.Address, target btcutil.Amount, cause error) error {
	amount := fundingAmount(target)
	h.metrics.AutoFundCounterVec.WithLabelValues(autoFundReason(cause)).Inc()
	h.logger.Warnf("%v for %s, sending %d outputs of %v", cause, addr, AutoFundOutputs, amount)

	if _, err := h.SendUTXOsToAddress(addr, amount, AutoFundOutputs); err != nil {
		return fmt.Errorf("%w for %s (target %v), auto-funding failed: %w", cause, addr, target, err)
	}

	return &FundingTriggeredError{
		Cause:   cause,
		Address: addr.EncodeAddress(),
		Target:  target,
		Amount:  amount,
		Outputs: AutoFundOutputs,
	}
}

func autoFundReason(cause error) string {
	if errors.Is(cause, ErrNoUTXOAvailable) {
		return "no-utxo"
	}

	return "insufficient-amount"
}

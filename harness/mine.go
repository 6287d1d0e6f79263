package harness

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/fiamma-labs/btctestkit/btcclient"
)

const (
	// AutoFundOutputs is the number of outputs UTXO selection sends to an
	// address it could not select from.
	AutoFundOutputs = 10
	// OperatorFundingOutputs is the number of outputs FundOperator sends.
	OperatorFundingOutputs = 20
	// MinFundingAmount is the floor for the amount of each funding output.
	MinFundingAmount = btcutil.Amount(10_000_000)
)

// GenBlock mines one block to the miner address.
func (h *Harness) GenBlock() (*chainhash.Hash, error) {
	hashes, err := h.MineBlocks(1)
	if err != nil {
		return nil, err
	}

	return hashes[0], nil
}

// MineBlocks mines n blocks to the miner address.
func (h *Harness) MineBlocks(n int64) ([]*chainhash.Hash, error) {
	hashes, err := h.client.GenerateToAddress(n, h.registry.MinerAddress())
	if err != nil {
		return nil, err
	}
	if int64(len(hashes)) < n || len(hashes) == 0 {
		return nil, fmt.Errorf("mined %d of %d blocks: %w", len(hashes), n, ErrNoBlocksMined)
	}

	h.metrics.BlocksMinedCounter.Add(float64(len(hashes)))
	h.logger.Debugf("mined %d blocks, tip %s", len(hashes), hashes[len(hashes)-1])

	return hashes, nil
}

// SendUTXOsToAddress sends amount to addr n times from the node wallet and
// mines one block so the outputs confirm.
func (h *Harness) SendUTXOsToAddress(addr btcutil.Address, amount btcutil.Amount, n int) ([]*chainhash.Hash, error) {
	if n <= 0 {
		return nil, fmt.Errorf("send %d outputs: %w", n, ErrInvalidOutputCount)
	}

	if err := h.checkAddress(addr); err != nil {
		return nil, err
	}

	txids := make([]*chainhash.Hash, 0, n)
	for i := 0; i < n; i++ {
		txid, err := h.client.SendToAddress(addr, amount)
		if err != nil {
			return txids, fmt.Errorf("funding output %d of %d: %w", i+1, n, err)
		}
		h.metrics.FundingSendsCounter.Inc()
		h.metrics.FundedAmountCounter.Add(float64(amount))
		txids = append(txids, txid)
	}

	if _, err := h.GenBlock(); err != nil {
		return txids, fmt.Errorf("failed to confirm funding of %s: %w", addr, err)
	}

	h.logger.Infof("sent %d outputs of %v to %s", n, amount, addr)

	return txids, nil
}

// FundOperator sends OperatorFundingOutputs outputs of at least
// MinFundingAmount to the operator address.
func (h *Harness) FundOperator(amount btcutil.Amount) ([]*chainhash.Hash, error) {
	return h.SendUTXOsToAddress(h.registry.Operator().Address, fundingAmount(amount), OperatorFundingOutputs)
}

func fundingAmount(amount btcutil.Amount) btcutil.Amount {
	return max(amount, MinFundingAmount)
}

func (h *Harness) checkAddress(addr btcutil.Address) error {
	if !addr.IsForNet(h.client.Network()) {
		return fmt.Errorf("address %s is not for %s: %w", addr, h.client.Network().Name, btcclient.ErrNetworkMismatch)
	}

	return nil
}

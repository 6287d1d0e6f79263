package harness_test

import (
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/golang/mock/gomock"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/fiamma-labs/btctestkit/btcclient"
	"github.com/fiamma-labs/btctestkit/harness"
)

const (
	fundedTxID     = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	operatorScript = "5120db4c79cc3ffca26f51e21241b9332d646b0772dd7e98de9c1de6b10990cab80b"
)

func scanResult(amounts ...float64) *btcclient.ScanTxOutResult {
	res := &btcclient.ScanTxOutResult{Success: true, Height: 200}
	for i, amount := range amounts {
		res.Unspents = append(res.Unspents, btcclient.ScanTxOutUnspent{
			TxID:         fundedTxID,
			Vout:         uint32(i),
			ScriptPubKey: operatorScript,
			Amount:       amount,
			Height:       150,
		})
		res.TotalAmount += amount
	}

	return res
}

func TestSelectUTXO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		unspents   []float64
		target     btcutil.Amount
		expectVout uint32
	}{
		{"first sufficient in scan order", []float64{0.05, 0.3, 0.5}, 20_000_000, 1},
		{"exact amount after rounding", []float64{0.29}, 29_000_000, 0},
		{"zero target takes first", []float64{0.00001, 2}, 0, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockClient, h, m := newMockHarness(t, ctrl)

			operator := h.Registry().Operator()
			mockClient.EXPECT().ScanTxOutSet(operator.PubKey).Return(scanResult(tc.unspents...), nil)

			utxo, err := h.SelectUTXO(operator.PubKey, tc.target, &chaincfg.RegressionNetParams)
			require.NoError(t, err)
			require.Equal(t, tc.expectVout, utxo.Vout)
			require.GreaterOrEqual(t, utxo.Amount, tc.target)
			require.Equal(t, fundedTxID, utxo.TxID.String())
			require.Equal(t, 1.0, promtestutil.ToFloat64(m.SelectedUTXOsCounter))
		})
	}
}

func TestSelectUTXOAutoFunds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		unspents     []float64
		target       btcutil.Amount
		fundedAmount btcutil.Amount
		cause        error
		reason       string
	}{
		{"empty scan", nil, 5_000_000, harness.MinFundingAmount, harness.ErrNoUTXOAvailable, "no-utxo"},
		{"all below target", []float64{0.1, 0.2}, 50_000_000, 50_000_000, harness.ErrNoSufficientUTXO, "insufficient-amount"},
		{"one satoshi short", []float64{0.29999999}, 30_000_000, 30_000_000, harness.ErrNoSufficientUTXO, "insufficient-amount"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockClient, h, m := newMockHarness(t, ctrl)

			user := h.Registry().UserPegin()
			scan := mockClient.EXPECT().ScanTxOutSet(user.PubKey).Return(scanResult(tc.unspents...), nil)
			sends := mockClient.EXPECT().SendToAddress(gomock.Any(), tc.fundedAmount).
				DoAndReturn(func(addr btcutil.Address, _ btcutil.Amount) (*chainhash.Hash, error) {
					require.Equal(t, user.Address.EncodeAddress(), addr.EncodeAddress())
					return &chainhash.Hash{0x01}, nil
				}).Times(harness.AutoFundOutputs).After(scan)
			mockClient.EXPECT().GenerateToAddress(int64(1), h.Registry().MinerAddress()).
				Return([]*chainhash.Hash{{0x02}}, nil).After(sends)

			utxo, err := h.SelectUTXO(user.PubKey, tc.target, &chaincfg.RegressionNetParams)
			require.Nil(t, utxo)
			require.ErrorIs(t, err, tc.cause)

			var fundErr *harness.FundingTriggeredError
			require.ErrorAs(t, err, &fundErr)
			require.Equal(t, user.Address.EncodeAddress(), fundErr.Address)
			require.Equal(t, tc.target, fundErr.Target)
			require.Equal(t, tc.fundedAmount, fundErr.Amount)
			require.Equal(t, harness.AutoFundOutputs, fundErr.Outputs)
			require.Contains(t, err.Error(), user.Address.EncodeAddress())

			require.Equal(t, 1.0, promtestutil.ToFloat64(m.AutoFundCounterVec.WithLabelValues(tc.reason)))
			require.Equal(t, 0.0, promtestutil.ToFloat64(m.SelectedUTXOsCounter))
		})
	}
}

func TestSelectUTXOFundingFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mockClient, h, _ := newMockHarness(t, ctrl)

	committee := h.Registry().Committee()
	walletErr := errors.New("Insufficient funds")
	mockClient.EXPECT().ScanTxOutSet(committee.PubKey).Return(scanResult(), nil)
	mockClient.EXPECT().SendToAddress(committee.Address, harness.MinFundingAmount).Return(nil, walletErr)

	_, err := h.SelectUTXO(committee.PubKey, 1_000, &chaincfg.RegressionNetParams)
	require.ErrorIs(t, err, harness.ErrNoUTXOAvailable)
	require.ErrorIs(t, err, walletErr)

	var fundErr *harness.FundingTriggeredError
	require.False(t, errors.As(err, &fundErr))
}

func TestSelectUTXOWrongNetwork(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	_, h, _ := newMockHarness(t, ctrl)

	// no scan is expected on the mock
	_, err := h.SelectUTXO(h.Registry().Operator().PubKey, 1_000, &chaincfg.SigNetParams)
	require.ErrorIs(t, err, btcclient.ErrNetworkMismatch)
}

func TestSelectUTXOScanError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mockClient, h, _ := newMockHarness(t, ctrl)

	operator := h.Registry().Operator()
	scanErr := errors.New("-8: Scan already in progress, use action \"abort\" or \"status\"")
	mockClient.EXPECT().ScanTxOutSet(operator.PubKey).Return(nil, scanErr)

	_, err := h.SelectUTXO(operator.PubKey, 1_000, &chaincfg.RegressionNetParams)
	require.ErrorIs(t, err, scanErr)
	require.Contains(t, err.Error(), operator.Address.EncodeAddress())
}

func TestSelectUTXOScanAbortedDoesNotFund(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mockClient, h, m := newMockHarness(t, ctrl)

	operator := h.Registry().Operator()
	mockClient.EXPECT().ScanTxOutSet(operator.PubKey).Return(&btcclient.ScanTxOutResult{Success: false}, nil)
	mockClient.EXPECT().SendToAddress(gomock.Any(), gomock.Any()).Times(0)
	mockClient.EXPECT().GenerateToAddress(gomock.Any(), gomock.Any()).Times(0)

	_, err := h.SelectUTXO(operator.PubKey, 1_000, &chaincfg.RegressionNetParams)
	require.ErrorIs(t, err, btcclient.ErrScanAborted)
	require.NotErrorIs(t, err, harness.ErrNoUTXOAvailable)
	var funded *harness.FundingTriggeredError
	require.False(t, errors.As(err, &funded))
	require.Zero(t, promtestutil.ToFloat64(m.AutoFundCounterVec.WithLabelValues("no-utxo")))
}

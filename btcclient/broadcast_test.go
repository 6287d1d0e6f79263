package btcclient

import (
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRejectReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reason string
		want   RejectReason
	}{
		{"txn-already-in-mempool", RejectAlreadyInMempool},
		{"txn-already-known", RejectAlreadyKnown},
		{"Transaction outputs already in utxo set", RejectOutputsInUTXOSet},
		{`Some("txn-already-in-mempool")`, RejectAlreadyInMempool},
		{"missing-inputs", RejectOther},
		{"bad-txns-inputs-missingorspent", RejectOther},
		{"", RejectOther},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.reason, func(t *testing.T) {
			t.Parallel()

			got := ClassifyRejectReason(tc.reason)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.want != RejectOther, got.AlreadyKnown())
		})
	}
}

// mempoolAcceptNode answers testmempoolaccept with the given verdict and
// accepts every sendrawtransaction.
func mempoolAcceptNode(t *testing.T, allowed bool, rejectReason string) *fakeNode {
	return newFakeNode(t, map[string]rpcHandler{
		"testmempoolaccept": func(t *testing.T, params []json.RawMessage) (interface{}, *btcjson.RPCError) {
			var rawTxs []string
			decodeParam(t, params[0], &rawTxs)
			assert.Len(t, rawTxs, 1)

			tx, _ := testTx(t)
			res := map[string]interface{}{
				"txid":    tx.TxHash().String(),
				"allowed": allowed,
			}
			if !allowed {
				res["reject-reason"] = rejectReason
			}
			return []interface{}{res}, nil
		},
		"sendrawtransaction": func(t *testing.T, params []json.RawMessage) (interface{}, *btcjson.RPCError) {
			tx, txHex := testTx(t)
			var got string
			decodeParam(t, params[0], &got)
			assert.Equal(t, txHex, got)

			return tx.TxHash().String(), nil
		},
	})
}

func TestCheckTx(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		allowed      bool
		rejectReason string
		expectErr    error
	}{
		{"allowed", true, "", nil},
		{"already in mempool", false, "txn-already-in-mempool", nil},
		{"outputs already in utxo set", false, "Transaction outputs already in utxo set", nil},
		{"rejected", false, "missing-inputs", ErrTxRejected},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n := mempoolAcceptNode(t, tc.allowed, tc.rejectReason)
			c := newTestClient(t, n)
			tx, _ := testTx(t)

			txid, err := c.CheckTx(tx)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				var rejected *RejectedError
				require.ErrorAs(t, err, &rejected)
				require.Equal(t, tc.rejectReason, rejected.Reason)
				require.Equal(t, tx.TxHash().String(), rejected.TxID)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tx.TxHash(), *txid)
			require.Zero(t, n.callCount("sendrawtransaction"))
		})
	}
}

func TestCheckTxEmptyResult(t *testing.T) {
	t.Parallel()

	n := newFakeNode(t, map[string]rpcHandler{
		"testmempoolaccept": func(*testing.T, []json.RawMessage) (interface{}, *btcjson.RPCError) {
			return []interface{}{}, nil
		},
	})
	c := newTestClient(t, n)
	tx, _ := testTx(t)

	_, err := c.CheckTx(tx)
	require.ErrorIs(t, err, ErrEmptyMempoolAccept)
}

func TestCheckAndPostTx(t *testing.T) {
	t.Parallel()

	t.Run("posts an accepted transaction", func(t *testing.T) {
		t.Parallel()

		n := mempoolAcceptNode(t, true, "")
		c := newTestClient(t, n)
		tx, _ := testTx(t)

		txid, err := c.CheckAndPostTx(tx)
		require.NoError(t, err)
		require.Equal(t, tx.TxHash(), *txid)
		require.Equal(t, 1, n.callCount("sendrawtransaction"))
	})

	t.Run("skips a known transaction", func(t *testing.T) {
		t.Parallel()

		n := mempoolAcceptNode(t, false, "txn-already-known")
		c := newTestClient(t, n)
		tx, _ := testTx(t)

		for i := 0; i < 2; i++ {
			txid, err := c.CheckAndPostTx(tx)
			require.NoError(t, err)
			require.Equal(t, tx.TxHash(), *txid)
		}
		require.Zero(t, n.callCount("sendrawtransaction"))
	})

	t.Run("does not post a rejected transaction", func(t *testing.T) {
		t.Parallel()

		n := mempoolAcceptNode(t, false, "bad-txns-inputs-missingorspent")
		c := newTestClient(t, n)
		tx, _ := testTx(t)

		_, err := c.CheckAndPostTx(tx)
		require.ErrorIs(t, err, ErrTxRejected)
		require.Zero(t, n.callCount("sendrawtransaction"))
	})
}

func TestPostTx(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rpcErr    *btcjson.RPCError
		expectErr bool
	}{
		{"accepted", nil, false},
		{
			"already in chain",
			&btcjson.RPCError{Code: btcjson.ErrRPCTxAlreadyInChain, Message: "Transaction outputs already in utxo set"},
			false,
		},
		{
			"rejected",
			&btcjson.RPCError{Code: btcjson.ErrRPCVerify, Message: "bad-txns-inputs-missingorspent"},
			true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n := newFakeNode(t, map[string]rpcHandler{
				"sendrawtransaction": func(t *testing.T, _ []json.RawMessage) (interface{}, *btcjson.RPCError) {
					if tc.rpcErr != nil {
						return nil, tc.rpcErr
					}
					tx, _ := testTx(t)
					return tx.TxHash().String(), nil
				},
			})
			c := newTestClient(t, n)
			tx, _ := testTx(t)

			txid, err := c.PostTx(tx)
			if tc.expectErr {
				var rpcErr *btcjson.RPCError
				require.ErrorAs(t, err, &rpcErr)
				require.Equal(t, tc.rpcErr.Code, rpcErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tx.TxHash(), *txid)
		})
	}
}

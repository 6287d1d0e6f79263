package btcclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fiamma-labs/btctestkit/config"
	"github.com/fiamma-labs/btctestkit/params"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcResponse struct {
	ID     json.RawMessage   `json:"id"`
	Result json.RawMessage   `json:"result"`
	Error  *btcjson.RPCError `json:"error"`
}

type rpcHandler func(t *testing.T, params []json.RawMessage) (interface{}, *btcjson.RPCError)

// fakeNode is a bitcoind stand-in answering JSON-RPC over HTTP POST.
type fakeNode struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]rpcHandler
	calls    map[string]int
	paths    []string
}

func newFakeNode(t *testing.T, handlers map[string]rpcHandler) *fakeNode {
	t.Helper()

	n := &fakeNode{
		handlers: map[string]rpcHandler{
			// bitcoind has no getinfo; rpcclient falls back to getnetworkinfo.
			"getinfo": func(*testing.T, []json.RawMessage) (interface{}, *btcjson.RPCError) {
				return nil, btcjson.ErrRPCMethodNotFound
			},
			"getnetworkinfo": func(*testing.T, []json.RawMessage) (interface{}, *btcjson.RPCError) {
				return map[string]interface{}{
					"version":         270000,
					"subversion":      "/Satoshi:27.0.0/",
					"protocolversion": 70016,
				}, nil
			},
		},
		calls: make(map[string]int),
	}
	for method, h := range handlers {
		n.handlers[method] = h
	}

	n.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "test" || pass != "1234" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		n.mu.Lock()
		n.calls[req.Method]++
		n.paths = append(n.paths, r.URL.Path)
		h, ok := n.handlers[req.Method]
		n.mu.Unlock()

		resp := rpcResponse{ID: req.ID}
		if !ok {
			resp.Error = btcjson.ErrRPCMethodNotFound
		} else {
			result, rpcErr := h(t, req.Params)
			if rpcErr != nil {
				resp.Error = rpcErr
			} else {
				resp.Result, _ = json.Marshal(result)
			}
		}
		if resp.Error != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(n.Close)

	return n
}

func (n *fakeNode) callCount(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.calls[method]
}

func (n *fakeNode) lastPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.paths) == 0 {
		return ""
	}

	return n.paths[len(n.paths)-1]
}

func (n *fakeNode) resolved() *config.ResolvedBTC {
	return &config.ResolvedBTC{
		Params:   params.Local(),
		Endpoint: n.URL,
		Username: "test",
		Password: "1234",
	}
}

func newTestClient(t *testing.T, n *fakeNode) *Client {
	t.Helper()

	c, err := New(n.resolved(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(c.Stop)

	return c
}

func newTestWallet(t *testing.T, n *fakeNode, walletName string) *Client {
	t.Helper()

	c, err := NewWallet(n.resolved(), walletName, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(c.Stop)

	return c
}

func decodeParam(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	assert.NoError(t, json.Unmarshal(raw, v))
}

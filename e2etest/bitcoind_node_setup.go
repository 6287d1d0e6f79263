package e2etest

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	"github.com/fiamma-labs/btctestkit/e2etest/container"
)

var (
	startTimeout = 30 * time.Second
)

type CreateWalletResponse struct {
	Name    string `json:"name"`
	Warning string `json:"warning"`
}

type BitcoindTestHandler struct {
	t *testing.T
	m *container.Manager
}

func NewBitcoindHandler(t *testing.T, manager *container.Manager) *BitcoindTestHandler {
	return &BitcoindTestHandler{
		t: t,
		m: manager,
	}
}

func (h *BitcoindTestHandler) Start() *dockertest.Resource {
	tempPath, err := os.MkdirTemp("", "btctestkit-test-*")
	require.NoError(h.t, err)

	h.t.Cleanup(func() {
		_ = os.RemoveAll(tempPath)
	})

	bitcoinResource, _, err := h.m.RunBitcoindResource(h.t, tempPath)
	require.NoError(h.t, err)

	h.t.Cleanup(func() {
		_ = h.m.ClearResources()
	})

	require.Eventually(h.t, func() bool {
		_, err := h.GetBlockCount()
		if err != nil {
			h.t.Logf("failed to get block count: %v", err)
		}
		return err == nil
	}, startTimeout, 500*time.Millisecond, "bitcoind did not start")

	return bitcoinResource
}

// GetBlockCount retrieves the current number of blocks through bitcoin-cli,
// independently of the client under test.
func (h *BitcoindTestHandler) GetBlockCount() (int, error) {
	buff, _, err := h.m.ExecBitcoindCliCmd(h.t, []string{"getblockcount"})
	if err != nil {
		return 0, err
	}

	parsedBuffStr := strings.TrimSuffix(buff.String(), "\n")

	return strconv.Atoi(parsedBuffStr)
}

// CreateWallet creates a descriptor wallet with the specified name in the Bitcoind
func (h *BitcoindTestHandler) CreateWallet(walletName string) *CreateWalletResponse {
	buff, _, err := h.m.ExecBitcoindCliCmd(h.t, []string{"createwallet", walletName, "false", "false", "", "false", "true"})
	require.NoError(h.t, err)

	var response CreateWalletResponse
	err = json.Unmarshal(buff.Bytes(), &response)
	require.NoError(h.t, err)

	return &response
}

// GetNewAddress returns a fresh bech32m address of the given wallet.
func (h *BitcoindTestHandler) GetNewAddress(walletName string) string {
	buff, _, err := h.m.ExecBitcoindCliCmd(h.t, []string{
		fmt.Sprintf("-rpcwallet=%s", walletName), "getnewaddress", "", "bech32m",
	})
	require.NoError(h.t, err)

	return strings.TrimSpace(buff.String())
}

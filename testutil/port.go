package testutil

import (
	"fmt"
	mrand "math/rand"
	"net"
	"os"
	"path/filepath"
	"testing"
)

// lock files shared by concurrently running test binaries
const lockDir = "/tmp/btctestkit_ports"

const (
	basePort     = 20000
	portRange    = 30000
	portAttempts = 10
)

// AllocateUniquePort returns a free localhost TCP port for bitcoind
// containers and metrics servers. The port stays reserved through a lock
// file until the test finishes, so parallel tests never share one.
func AllocateUniquePort(t *testing.T) int {
	t.Helper()

	if err := os.MkdirAll(lockDir, 0755); err != nil {
		t.Fatalf("failed to create lock directory: %v", err)
	}

	for i := 0; i < portAttempts; i++ {
		port := basePort + mrand.Intn(portRange)
		if reservePort(t, port) {
			return port
		}
	}

	t.Fatalf("failed to find an available port in range %d-%d", basePort, basePort+portRange)

	return 0
}

func reservePort(t *testing.T, port int) bool {
	lockFile := filepath.Join(lockDir, fmt.Sprintf("%d.lock", port))

	lock, err := os.OpenFile(lockFile, os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return false
	}
	_ = lock.Close()

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		_ = os.Remove(lockFile)
		return false
	}
	if err := listener.Close(); err != nil {
		_ = os.Remove(lockFile)
		return false
	}

	t.Cleanup(func() {
		_ = os.Remove(lockFile)
	})

	return true
}

package retrywrap

import (
	"errors"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/btcsuite/btcd/rpcclient"

	"github.com/fiamma-labs/btctestkit/btcclient"
	"github.com/fiamma-labs/btctestkit/netparams"
	"github.com/fiamma-labs/btctestkit/params"
)

// unrecoverableErrors is a list of errors which no amount of waiting fixes.
var unrecoverableErrors = []error{
	rpcclient.ErrInvalidAuth,
	rpcclient.ErrClientShutdown,
	netparams.ErrUnsupportedNetwork,
	params.ErrBitcoinURLUnset,
	btcclient.ErrNetworkMismatch,
	btcclient.ErrWalletRequired,
}

func containsErr(errs []error, err error) bool {
	for _, e := range errs {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// bitcoind answers a bad rpcauth with an empty 401 body, which rpcclient
// reports as a plain status error in HTTP POST mode.
func isAuthFailure(err error) bool {
	return err != nil && strings.Contains(err.Error(), "status code: 401")
}

// IsUnrecoverable reports whether err must stop a retry loop.
func IsUnrecoverable(err error) bool {
	return containsErr(unrecoverableErrors, err) || isAuthFailure(err)
}

// Do - executes a retryable function with customizable retry behavior using retry-go.
// It retries the function unless the error is considered unrecoverable.
func Do(retryableFunc retry.RetryableFunc, opts ...retry.Option) error {
	opt := retry.RetryIf(func(err error) bool {
		return !IsUnrecoverable(err)
	})

	opts = append(opts, opt)

	return retry.Do(retryableFunc, opts...)
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/cobra"

	"github.com/fiamma-labs/btctestkit/accounts"
	"github.com/fiamma-labs/btctestkit/harness"
	"github.com/fiamma-labs/btctestkit/keys"
)

const (
	pubKeyFlag = "pubkey"
	roleFlag   = "role"
)

// CommandSelectUTXO picks a UTXO of a key, funding its address first if
// it has nothing usable.
func CommandSelectUTXO() *cobra.Command {
	var (
		pubKeyHex string
		role      string
		amount    float64
	)

	cmd := &cobra.Command{
		Use:   "select-utxo",
		Short: "Selects a UTXO of at least --amount controlled by a taproot key",
		Long: "Scans the UTXO set for the key-path taproot address of the key. When nothing " +
			"usable is found the address is funded, a block is mined and the command fails; " +
			"run it again to get the UTXO.",
		Example: "btctestkit select-utxo --role operator --amount 0.2",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := btcutil.NewAmount(amount)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			pub, err := selectKey(env.harness.Registry(), pubKeyHex, role)
			if err != nil {
				return err
			}

			utxo, err := env.harness.SelectUTXO(pub, target, env.client.Network())
			var fundErr *harness.FundingTriggeredError
			if errors.As(err, &fundErr) {
				cmd.PrintErrf("address %s was funded with %d outputs of %v, please rerun\n",
					fundErr.Address, fundErr.Outputs, fundErr.Amount)
			}
			if err != nil {
				return err
			}

			cmd.Println(utxo)

			return nil
		},
	}
	cmd.Flags().StringVar(&pubKeyHex, pubKeyFlag, "", "compressed public key in hex")
	cmd.Flags().StringVar(&role, roleFlag, string(accounts.RoleOperator), "account role used when --pubkey is not set")
	cmd.Flags().Float64Var(&amount, amountFlag, harness.MinFundingAmount.ToBTC(), "minimum amount in BTC")

	return cmd
}

func selectKey(registry *accounts.Registry, pubKeyHex, role string) (*btcec.PublicKey, error) {
	if pubKeyHex != "" {
		return keys.ParsePublicKey(pubKeyHex)
	}

	acc, err := registry.Get(accounts.Role(role))
	if err != nil {
		return nil, err
	}

	return acc.PubKey, nil
}

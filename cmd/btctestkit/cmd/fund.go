package cmd

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/cobra"

	"github.com/fiamma-labs/btctestkit/harness"
)

const (
	addressFlag = "address"
	amountFlag  = "amount"
	outputsFlag = "outputs"
)

// CommandFund sends wallet funds to the operator or to any address.
func CommandFund() *cobra.Command {
	var (
		address string
		amount  float64
		outputs int
	)

	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Sends outputs from the node wallet and mines a block",
		Long: fmt.Sprintf("Without --%s the operator receives %d outputs of at least %v. "+
			"With --%s the address receives --%s outputs of exactly --%s.",
			addressFlag, harness.OperatorFundingOutputs, harness.MinFundingAmount, addressFlag, outputsFlag, amountFlag),
		Example: "btctestkit fund --amount 0.5\nbtctestkit fund --address bcrt1p... --amount 0.01 --outputs 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amt, err := btcutil.NewAmount(amount)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			var txids []string
			if address == "" {
				hashes, err := env.harness.FundOperator(amt)
				if err != nil {
					return err
				}
				for _, h := range hashes {
					txids = append(txids, h.String())
				}
			} else {
				addr, err := btcutil.DecodeAddress(address, env.client.Network())
				if err != nil {
					return fmt.Errorf("invalid address %s: %w", address, err)
				}
				hashes, err := env.harness.SendUTXOsToAddress(addr, amt, outputs)
				if err != nil {
					return err
				}
				for _, h := range hashes {
					txids = append(txids, h.String())
				}
			}

			for _, txid := range txids {
				cmd.Println(txid)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&address, addressFlag, "", "address to fund, defaults to the operator")
	cmd.Flags().Float64Var(&amount, amountFlag, harness.MinFundingAmount.ToBTC(), "amount in BTC of each output")
	cmd.Flags().IntVar(&outputs, outputsFlag, 1, "number of outputs sent to --address")

	return cmd
}

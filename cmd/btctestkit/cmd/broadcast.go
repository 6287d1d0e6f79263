package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fiamma-labs/btctestkit/harness"
	"github.com/fiamma-labs/btctestkit/utils"
)

const modeFlag = "mode"

// CommandBroadcast submits a raw transaction and checks the returned txid.
func CommandBroadcast() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:     "broadcast <tx-hex>",
		Short:   "Broadcasts a signed transaction",
		Example: "btctestkit broadcast 0200000001... --mode checked",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := utils.TxFromHex(args[0])
			if err != nil {
				return err
			}

			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			broadcastMode := env.harness.Mode()
			if mode != "" {
				if broadcastMode, err = harness.ParseBroadcastMode(mode); err != nil {
					return err
				}
			}

			txid, err := env.harness.Broadcast(tx, broadcastMode)
			if err != nil {
				return err
			}

			cmd.Println(txid)

			return nil
		},
	}
	cmd.Flags().StringVar(&mode, modeFlag, "", "direct or checked, defaults to harness.broadcast-mode of the config")

	return cmd
}

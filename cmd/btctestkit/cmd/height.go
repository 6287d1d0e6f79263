package cmd

import (
	"github.com/spf13/cobra"
)

const waitFlag = "wait"

// CommandHeight prints the chain tip of the node.
func CommandHeight() *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:     "height",
		Short:   "Prints the block count and median time past of the node",
		Example: "btctestkit height --wait",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			var height int64
			if wait {
				ctx, cancel := interruptContext(cmd)
				defer cancel()

				if height, err = env.harness.WaitForNode(ctx); err != nil {
					return err
				}
			} else if height, err = env.client.GetBlockCount(); err != nil {
				return err
			}

			mtp, err := env.client.GetBlockMedianTime(height)
			if err != nil {
				return err
			}

			cmd.Printf("height: %d\n", height)
			cmd.Printf("median-time: %d\n", mtp)

			return nil
		},
	}
	cmd.Flags().BoolVar(&wait, waitFlag, false, "poll the node until it answers")

	return cmd
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// CommandMine mines blocks to the miner address of the fixtures.
func CommandMine() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mine [blocks]",
		Short:   "Mines blocks to the miner address",
		Example: "btctestkit mine 101",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numBlocks := int64(1)
			if len(args) == 1 {
				n, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid block count %q: %w", args[0], err)
				}
				numBlocks = n
			}

			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			hashes, err := env.harness.MineBlocks(numBlocks)
			if err != nil {
				return err
			}

			for _, hash := range hashes {
				cmd.Println(hash)
			}

			return nil
		},
	}

	return cmd
}

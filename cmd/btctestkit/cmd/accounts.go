package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fiamma-labs/btctestkit/accounts"
	"github.com/fiamma-labs/btctestkit/keys"
)

// CommandAccounts lists the test accounts of the configured fixtures file.
func CommandAccounts() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Short:   "Lists the test accounts with their taproot addresses",
		Example: "btctestkit accounts --config ./btctestkit.yml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			p, err := cfg.BTC.PresetParams()
			if err != nil {
				return err
			}
			net, err := p.ChainParams()
			if err != nil {
				return err
			}

			registry, err := accounts.Load(cfg.Accounts.FixturesFile, net)
			if err != nil {
				return fmt.Errorf("failed to load accounts: %w", err)
			}

			cmd.Printf("network: %s\n", registry.Network().Name)
			cmd.Printf("miner:   %s\n", registry.MinerAddress())
			for _, acc := range registry.All() {
				cmd.Printf("%s:\n", acc.Role)
				cmd.Printf("  public-key:   %x\n", acc.PubKey.SerializeCompressed())
				cmd.Printf("  output-key:   %s\n", hex.EncodeToString(keys.TweakedPublicKey(acc.PubKey)))
				cmd.Printf("  descriptor:   %s\n", keys.TaprootDescriptor(acc.PubKey))
				cmd.Printf("  address:      %s\n", acc.Address)
				cmd.Printf("  private-key:  %t\n", acc.PrivKey != nil)
			}

			return nil
		},
	}

	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fiamma-labs/btctestkit/params"
)

const devBitcoinURLFlag = "dev-bitcoin-url"

// CommandParams prints the connection settings of the environment presets.
// It does not read the config file.
func CommandParams() *cobra.Command {
	var devBitcoinURL string

	cmd := &cobra.Command{
		Use:     "params [preset]",
		Short:   "Shows network, endpoints and credentials of the environment presets",
		Example: "btctestkit params local",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := params.Names()
			if len(args) == 1 {
				names = args
			}

			for _, name := range names {
				p, err := params.FromName(name)
				if err != nil {
					return err
				}
				printParams(cmd, p.WithDevBitcoinURL(devBitcoinURL))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&devBitcoinURL, devBitcoinURLFlag, "", "bitcoind url behind the dev regtest endpoint")

	return cmd
}

func printParams(cmd *cobra.Command, p params.Params) {
	bitcoinURL, err := p.BitcoinURL()
	if err != nil {
		bitcoinURL = fmt.Sprintf("<%v>", err)
	}
	username, _ := p.BitcoinUsername()

	cmd.Printf("%s:\n", p.Name)
	cmd.Printf("  network:       %s\n", p.Network)
	cmd.Printf("  http-endpoint: %s\n", p.HTTPEndpoint)
	cmd.Printf("  dev:           %t\n", p.IsDev())
	cmd.Printf("  bitcoin-url:   %s\n", bitcoinURL)
	cmd.Printf("  username:      %s\n", username)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fiamma-labs/btctestkit/config"
)

const (
	configFileFlag = "config"
)

// NewRootCmd creates the root command of btctestkit. It is called once in the main function.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "btctestkit",
		Short:         "Regtest and signet helpers for bridge integration tests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String(configFileFlag, config.DefaultConfigFile(), "config file")

	rootCmd.AddCommand(
		CommandDumpConfig(),
		CommandVersion(),
		CommandParams(),
		CommandAccounts(),
		CommandHeight(),
		CommandMine(),
		CommandFund(),
		CommandSelectUTXO(),
		CommandBroadcast(),
	)

	return rootCmd
}

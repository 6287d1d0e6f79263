package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fiamma-labs/btctestkit/config"
)

const (
	configFileDirFlag = "config-file-dir"
)

// CommandDumpConfig returns the command to dump the default config
func CommandDumpConfig() *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "dump-cfg",
		Aliases: []string{"dc"},
		Short:   "Dumps the default btctestkit config at the specified path",
		Example: `btctestkit dump-cfg --config-file-dir /path/to/btctestkit.yml`,
		Args:    cobra.NoArgs,
		RunE:    dumpConfig,
	}
	cmd.Flags().String(configFileDirFlag, config.DefaultConfigFile(), "Path to where the default config file will be dumped")

	return cmd
}

func dumpConfig(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString(configFileDirFlag)
	if err != nil {
		return fmt.Errorf("failed to read flag %s: %w", configFileDirFlag, err)
	}

	if fileExists(configPath) {
		return fmt.Errorf("config already exists under provided path: %s", configPath)
	}

	if dir := filepath.Dir(configPath); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("could not create config directory: %w", err)
		}
	}

	defaultConfig := config.DefaultConfig()
	if err := defaultConfig.SaveToYAML(configPath); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	cmd.Printf("Default config written to %s\n", configPath)

	return nil
}

func fileExists(name string) bool {
	_, err := os.Stat(name)

	return err == nil
}

package main

import (
	"fmt"
	"os"

	"github.com/fiamma-labs/btctestkit/cmd/btctestkit/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

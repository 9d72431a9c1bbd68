package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "medvaultctl",
	Short: "MedVault server administration tool",
	Long: `medvaultctl manages a MedVault deployment from the server host:
generates field encryption keys and provisions staff accounts directly
against the database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

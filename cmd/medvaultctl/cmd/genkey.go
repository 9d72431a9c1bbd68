package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medvault/internal/crypto"
)

var genkeyCmd = &cobra.Command{
	Use:   "genkey",
	Short: "Generate a new field encryption key",
	Long: `Generates a random AES-256 key and prints it hex-encoded,
ready to be set as ENCRYPTION_KEY for the server.

Rotating the key makes previously stored records undecryptable.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		key := make([]byte, crypto.KeySize)
		if _, err := rand.Read(key); err != nil {
			return fmt.Errorf("generate key: %w", err)
		}

		color.Yellow("Store this key securely. Records encrypted with it cannot be recovered without it.")
		fmt.Printf("ENCRYPTION_KEY=%s\n", hex.EncodeToString(key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genkeyCmd)
}

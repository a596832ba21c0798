package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/obolus/obolus"
)

func keygenCmd() *cobra.Command {
	var (
		outDir      string
		privateName string
		publicName  string
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an Ed25519 key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			signing, verification, err := obolus.GenerateKeyPair()
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o700); err != nil {
				return err
			}

			privPEM, err := signing.MarshalPEM()
			if err != nil {
				return err
			}
			pubPEM, err := verification.MarshalPEM()
			if err != nil {
				return err
			}

			privPath := filepath.Join(outDir, privateName)
			pubPath := filepath.Join(outDir, publicName)

			if err := os.WriteFile(privPath, privPEM, 0o600); err != nil {
				return fmt.Errorf("failed to write private key: %w", err)
			}
			if err := os.WriteFile(pubPath, pubPEM, 0o644); err != nil {
				return fmt.Errorf("failed to write public key: %w", err)
			}

			fmt.Printf("Private key saved to: %s\n", privPath)
			fmt.Printf("Public key saved to: %s\n", pubPath)
			fmt.Printf("Public key (base64): %s\n", verification.MarshalBase64())
			fmt.Println("\nKeep the private key secure and never share it.")
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", ".", "directory to save key files")
	cmd.Flags().StringVar(&privateName, "private-key", "private_key.pem", "filename for the private key")
	cmd.Flags().StringVar(&publicName, "public-key", "public_key.pem", "filename for the public key")

	return cmd
}

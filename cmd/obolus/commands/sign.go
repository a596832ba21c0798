package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obolus/obolus"
)

func signCmd() *cobra.Command {
	var (
		keyPath   string
		keyBase64 string
		chalPath  string
		decision  string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a challenge with a private key",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := loadSigningKey(keyPath, keyBase64)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(chalPath)
			if err != nil {
				return fmt.Errorf("failed to read challenge file: %w", err)
			}
			challenge, err := obolus.ParseChallenge(data)
			if err != nil {
				return err
			}

			dec, err := obolus.ParseDecision(decision)
			if err != nil {
				return err
			}

			response, err := obolus.Sign(challenge, dec, key)
			if err != nil {
				return err
			}

			payload, err := json.MarshalIndent(response, "", "  ")
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, payload, 0o644); err != nil {
					return err
				}
				fmt.Printf("Response saved to %s\n", output)
				return nil
			}

			fmt.Println(string(payload))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyPath, "key", "", "path to PEM private key file")
	cmd.Flags().StringVar(&keyBase64, "key-base64", "", "base64 compact private key")
	cmd.Flags().StringVar(&chalPath, "challenge", "", "path to challenge JSON file")
	cmd.Flags().StringVar(&decision, "decision", "approved", "decision (approved or rejected)")
	cmd.Flags().StringVar(&output, "output", "", "output file (default: stdout)")
	cmd.MarkFlagRequired("challenge")

	return cmd
}

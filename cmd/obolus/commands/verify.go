package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obolus/obolus"
)

func verifyCmd() *cobra.Command {
	var (
		keyPath   string
		keyBase64 string
		chalPath  string
		respPath  string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signed response against a challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := loadVerificationKey(keyPath, keyBase64)
			if err != nil {
				return err
			}

			chalData, err := os.ReadFile(chalPath)
			if err != nil {
				return fmt.Errorf("failed to read challenge file: %w", err)
			}
			challenge, err := obolus.ParseChallenge(chalData)
			if err != nil {
				return err
			}

			respData, err := os.ReadFile(respPath)
			if err != nil {
				return fmt.Errorf("failed to read response file: %w", err)
			}
			response, err := obolus.ParseResponse(respData)
			if err != nil {
				return err
			}

			verified, status, err := obolus.Verify(challenge, response, key)
			if err != nil {
				return err
			}

			if !verified {
				return fmt.Errorf("verification failed: %s", status)
			}

			fmt.Printf("Verification successful: the challenge was %s\n", status)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyPath, "key", "", "path to PEM public key file")
	cmd.Flags().StringVar(&keyBase64, "key-base64", "", "base64 compact public key")
	cmd.Flags().StringVar(&chalPath, "challenge", "", "path to challenge JSON file")
	cmd.Flags().StringVar(&respPath, "response", "", "path to response JSON file")
	cmd.MarkFlagRequired("challenge")
	cmd.MarkFlagRequired("response")

	return cmd
}

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/obolus/obolus"
)

func challengeCmd() *cobra.Command {
	var (
		expirySeconds int
		output        string
	)

	cmd := &cobra.Command{
		Use:   "challenge <action>",
		Short: "Generate a challenge for an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validity := time.Duration(expirySeconds) * time.Second
			challenge, err := obolus.NewChallenge(args[0], validity)
			if err != nil {
				return err
			}

			payload, err := json.MarshalIndent(challenge, "", "  ")
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, payload, 0o644); err != nil {
					return err
				}
				fmt.Printf("Challenge saved to %s\n", output)
				return nil
			}

			fmt.Println(string(payload))
			return nil
		},
	}

	cmd.Flags().IntVar(&expirySeconds, "expiry", 60, "validity window in seconds")
	cmd.Flags().StringVar(&output, "output", "", "output file (default: stdout)")

	return cmd
}

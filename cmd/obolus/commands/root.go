package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:          "obolus",
		Short:        "Challenge-response intent verification with Ed25519 signatures",
		SilenceUsage: true,
	}

	root.AddCommand(keygenCmd(), challengeCmd(), signCmd(), verifyCmd(), serveCmd())
	return root.Execute()
}

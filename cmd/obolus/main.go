package main

import (
	"os"

	"github.com/obolus/obolus/cmd/obolus/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

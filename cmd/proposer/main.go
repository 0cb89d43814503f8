package main

import (
	"os"

	"proposer/cmd/proposer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

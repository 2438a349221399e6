package main

import (
	"os"

	"killerpack/cmd/killerpack/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

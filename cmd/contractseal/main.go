package main

import (
	"os"

	"contractseal/cmd/contractseal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

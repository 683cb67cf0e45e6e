package main

import (
	"os"

	"moneybox/cmd/moneybox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

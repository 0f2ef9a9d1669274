package main

import (
	"os"

	"cryptalk/cmd/cryptalk/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

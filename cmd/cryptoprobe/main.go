package main

import (
	"os"

	"cryptoprobe/cmd/cryptoprobe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

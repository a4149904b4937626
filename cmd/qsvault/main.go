package main

import (
	"os"

	"qsvault/cmd/qsvault/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

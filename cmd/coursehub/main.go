package main

import (
	"os"

	"coursehub/cmd/coursehub/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

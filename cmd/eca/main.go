package main

import (
	"os"

	"unbounded-ca/cmd/eca/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

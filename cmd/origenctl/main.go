package main

import (
	"os"

	"github.com/origenlab/backend/cmd/origenctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/Jaesu26/pairrot-solver/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/tcfw/stakesim/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

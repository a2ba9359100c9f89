package main

import (
	"os"

	"github.com/pyproject-dev/pyproject-setup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

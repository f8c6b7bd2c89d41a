package main

import (
	"os"

	"github.com/studio-pipeline/workbench/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

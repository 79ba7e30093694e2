package main

import (
	"os"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

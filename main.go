package main

import (
	"os"

	"github.com/jobfit-labs/jobfit-ingest/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

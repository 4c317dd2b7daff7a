package main

import (
	"os"

	"github.com/BuzzLyutic/plm-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

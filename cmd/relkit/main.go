package main

import (
	"os"

	"github.com/tkhquang/relkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

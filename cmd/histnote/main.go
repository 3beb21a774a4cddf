package main

import (
	"fmt"
	"os"

	"github.com/runnerr0/histnote/internal/cli"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "histnote: %v\n", err)
		os.Exit(1)
	}
}

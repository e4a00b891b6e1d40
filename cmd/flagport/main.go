package main

import (
	"fmt"
	"os"

	"github.com/MGalimov/flagport/internal/cli"
)

// Overridden at build time via
// -ldflags "-X main.buildVersion=... -X main.buildCommit=...".
var (
	buildVersion string
	buildCommit  string
)

func main() {
	if buildVersion != "" {
		cli.SetVersion(buildVersion, buildCommit)
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

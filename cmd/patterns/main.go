package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-patterns/internal/cli"
)

// Set via ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

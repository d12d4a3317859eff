// Package main is the entry point for the tour-desk CLI.
package main

import (
	"fmt"
	"os"

	"github.com/zanzibarexplore/tour-desk/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

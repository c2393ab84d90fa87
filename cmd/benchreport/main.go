// Package main provides the entry point for the benchreport CLI.
package main

import (
	"fmt"
	"os"

	"benchreport/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

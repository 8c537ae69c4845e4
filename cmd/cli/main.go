// Package main is the entry point for the roas CLI.
package main

import (
	"os"

	"roas-calculator/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the frostbar CLI.
package main

import (
	"os"

	"github.com/frostbar-io/frostbar/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

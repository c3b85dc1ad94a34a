// Package main is the entry point for the tmsel CLI.
package main

import (
	"os"

	"github.com/gmartijn/Threatmodelselector/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}

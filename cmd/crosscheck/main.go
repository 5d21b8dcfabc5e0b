// Package main is the entry point for the crosscheck CLI.
package main

import (
	"os"

	"github.com/crosscheck-build/crosscheck/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}

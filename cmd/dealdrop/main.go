// Package main is the entry point for the dealdrop server.
package main

import (
	"os"

	"github.com/dealdrop/dealdrop/cmd/dealdrop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

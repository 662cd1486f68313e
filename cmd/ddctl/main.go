// Package main is the entry point for the ddctl CLI client.
package main

import (
	"github.com/dealdrop/dealdrop/cmd/ddctl/cmd"
)

func main() {
	cmd.Execute()
}

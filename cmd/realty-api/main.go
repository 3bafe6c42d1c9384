// Package main is the entry point for the realty-api server.
package main

import (
	"fmt"
	"os"

	"github.com/realtydesk/realty-api/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

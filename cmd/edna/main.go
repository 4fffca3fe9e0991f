// edna: E-DNA assessment scoring CLI and MCP server.
//
// Usage:
//
//	edna serve                          # Start MCP server (stdio transport)
//	edna score --answers answers.json   # Score a quiz and print the profile
//	edna history                        # List stored profiles
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

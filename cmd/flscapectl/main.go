// Command flscapectl characterizes optimiser traces and generates
// synthetic ones for testing and demonstration.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := NewCLI(version).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

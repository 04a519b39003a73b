// Completion: 100% - Entry point complete
package main

import (
	"fmt"
	"os"
)

const versionString = "dynasm-demo 0.1.0"

func main() {
	cfg := LoadConfig()
	if err := RunCLI(os.Args[1:], cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

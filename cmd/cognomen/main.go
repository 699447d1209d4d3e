// Command cognomen generates polity names from the command line and runs
// demo matches through the naming engine.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

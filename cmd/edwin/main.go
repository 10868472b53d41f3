// Command edwin builds edwin scene files on the headless backend and checks
// configuration files.
package main

import (
	"fmt"
	"os"

	"github.com/go-edwin/edwin/cmd/edwin/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

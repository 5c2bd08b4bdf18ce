package main

import (
	"fmt"
	"os"

	"stackpad/cmd/stackctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stackctl:", err)
		os.Exit(1)
	}
}

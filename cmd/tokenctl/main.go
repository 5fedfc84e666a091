package main

import (
	"fmt"
	"os"

	"tokenforge/cmd/tokenctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

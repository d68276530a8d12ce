package main

import (
	"fmt"
	"os"

	"github.com/awnumar/memguard"

	"github.com/deploymenttheory/go-corestorage/cmd"
)

func main() {
	memguard.CatchInterrupt()
	defer memguard.Purge()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		memguard.SafeExit(1)
	}
}

package main

import (
	"os"

	"livadm/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		// Commands print their own errors; Execute's non-nil return is the exit signal.
		os.Exit(1)
	}
}

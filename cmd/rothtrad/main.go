package main

import (
	"os"

	"github.com/rpgo/rothtrad/cmd/rothtrad/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

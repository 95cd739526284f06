package main

import (
	"os"

	"github.com/rustyeddy/risksim/cmd/risksim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

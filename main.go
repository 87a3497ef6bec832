package main

import (
	"os"

	"github.com/skyops/farecast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

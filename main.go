package main

import (
	"os"

	"github.com/careerbooster/cb-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

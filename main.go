package main

import (
	"os"

	"github.com/topocapital/suitability/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

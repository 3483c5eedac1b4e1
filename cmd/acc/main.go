// Package main is the entry point for the acc CLI.
package main

import (
	"os"

	"github.com/MohamedRadiWebDev/ACC/cmd/acc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/adaforge/acase/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

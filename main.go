package main

import (
	"os"

	"github.com/mkurien/skillpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/usagi/eigoz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/swatter555/leadercorps/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

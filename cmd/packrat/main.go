package main

import (
	"os"

	"github.com/kukaryambik/packrat/cmd/packrat/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

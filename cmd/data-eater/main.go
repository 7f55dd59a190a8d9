package main

import (
	"os"

	"github.com/joshradin/data-eater/internal/cmd/snowcli"
)

func main() {
	if err := snowcli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

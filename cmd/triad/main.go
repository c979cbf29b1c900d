// triad checks the dominant colours of an image against the 60/30/10 rule.
package main

import (
	"os"

	"github.com/jmylchreest/triad/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Command rpanet grows directed weighted networks by generalized
// preferential attachment from a YAML run configuration.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

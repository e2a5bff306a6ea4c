// statesearch solves graph and grid problems from YAML files.
package main

import (
	"os"

	"github.com/pdrpinto/search/cmd/statesearch/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

// main is the entrypoint for the ossdash CLI.
package main

import (
	"os"

	"github.com/braxton-quillin/oss-dashboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

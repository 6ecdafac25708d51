// toastctl - Windows toast notifications from the command line
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/toastkit

package main

import (
	"os"

	"github.com/ariel-frischer/toastkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

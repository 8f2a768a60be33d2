// Command bordsql drives the CST parsing engine from the command line:
// parsing one file or a literal query, and benchmarking a corpus directory.
package main

import (
	"os"

	"github.com/bordsql/bordsql/internal/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

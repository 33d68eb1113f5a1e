// Command docrank ranks document fragments by relevance to a persona
// and a job-to-be-done.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/docrank-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

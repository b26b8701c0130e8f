// Command socialctl inspects and exercises the social consensus core's
// Limit Table, Checkpoint Registry, and checkpoint-escape registry from
// the command line.
package main

import (
	"fmt"
	"os"

	"socialconsensus/cmd/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

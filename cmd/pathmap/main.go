// Command pathmap is a thin companion CLI around the pathmap and bloom
// packages: build a trie file (and optional bloom companion) from a
// tab-separated path/payload input, and look up paths against a built
// file. The library itself has no CLI dependency; this binary exists
// because every command in this codebase ships a cobra surface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathmap",
	Short: "Build and query PathMap trie files",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

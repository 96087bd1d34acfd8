// Command percolate runs site-percolation experiments from the terminal.
//
//	percolate open  < sites.txt     # grid size, then row/col pairs
//	percolate stats 200 100         # threshold estimate over 100 trials
package main

import (
	"fmt"
	"os"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

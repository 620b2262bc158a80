// Command sudocanon reduces Sudoku puzzles, given as 81-character
// arguments, to the canonical forms of their structural equivalence
// classes, one per line on stdout.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

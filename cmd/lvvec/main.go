// Command lvvec replays vector operation scripts and prints the capacity
// policy of vector.Vector.
//
//	lvvec replay testdata/scenario.yaml
//	lvvec policy --from 16 --steps 10
package main

import (
	"os"
)

func main() {
	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

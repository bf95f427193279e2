// Command strcmpbench runs the string comparison loops over the input-size
// sweep and reports throughput.
//
//	strcmpbench --filter 'loop_uint' --count 5 --format csv -o results.csv
//	strcmpbench list loop_int
//	strcmpbench sizes
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

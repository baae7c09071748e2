// xxh32sum prints the seeded 32-bit xxHash digest of each named file.
package main

import (
	"fmt"
	"os"

	xxh32 "github.com/bitleak/go-xxh32"
	"github.com/spf13/pflag"
)

func main() {
	seed := pflag.Uint32P("seed", "s", 0, "seed to perturb the digest")
	pflag.Parse()

	if pflag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: xxh32sum [--seed n] file...\n")
		os.Exit(1)
	}

	status := 0
	for _, name := range pflag.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "xxh32sum: %v\n", err)
			status = 1
			continue
		}
		fmt.Printf("%08x  %s\n", xxh32.Checksum(data, *seed), name)
	}
	os.Exit(status)
}

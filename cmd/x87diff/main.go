// Command x87diff drives a software and a native x87 register file
// through the same sequences of pseudo-random and hand-picked values and
// reports any bit-level disagreement: no flags, exit code 0 on
// completion, one diagnostic line per mismatch.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/x87emu/x87emu/x87"
)

const defaultSeed = 0

func main() {
	seed := defaultSeed
	if v := os.Getenv("X87DIFF_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = int(n)
		}
	}

	soft := x87.NewSoftFpu()
	hard, err := x87.AcquireHardFpu()
	if err != nil {
		fmt.Fprintf(os.Stderr, "x87diff: %v\n", err)
		os.Exit(1)
	}
	defer hard.Close()

	rep := x87.NewWriterReporter(os.Stdout)
	x87.RunDifferentialTests(soft, hard, int64(seed), rep)
}

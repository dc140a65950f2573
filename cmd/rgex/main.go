// SPDX-License-Identifier: MIT

// Command rgex exports renormalization-group beta functions as a UFO
// running.py module and inspects gauge-group data.
//
//	rgex export --model sm.yaml --out ./UFO
//	rgex inspect --groups groups.yaml --group SU3 --reps 3
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rgex/internal/ux"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ux.Error(err))
		os.Exit(1)
	}
}

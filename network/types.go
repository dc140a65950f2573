// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rgex/symbolic"
)

// Index identifies one contracted flavor leg within a single term.
type Index int

// Pair is the (left, right) index pair of a matrix factor.
type Pair [2]Index

// Swap exchanges the row and column legs.
func (p Pair) Swap() Pair { return Pair{p[1], p[0]} }

// Structures looks up the flavor structure of a matrix-valued coupling.
// *model.Model satisfies it.
type Structures interface {
	Structure(name string) ([]int, bool)
}

// Input is one classified term with matrix content.
type Input struct {
	Coupling string
	Matrices []symbolic.Matrix
	Traces   []symbolic.Trace
	Symbols  []symbolic.Symbol
}

// Network is the explicit index-contraction network of one term.
type Network struct {
	// Prefix holds the non-indexed coupling, if any, placed before the indexed chain.
	Prefix []string

	// Factors are the indexed factors: the matrix coupling first (when indexed),
	// then the chain, then every trace chain, modifiers stripped.
	Factors []string

	// Symbols are the plain commuting factors of the term.
	Symbols []symbolic.Symbol

	// Indices[i] is the pair of Factors[i], already swapped for transposed factors.
	Indices []Pair

	// Ranges[id] is the dimension of index id.
	Ranges []int

	// Conj lists the positions in Factors that are complex-conjugated.
	Conj []int

	traces [][]int // factor positions of each trace, in order
}

// IndexCount returns the number of distinct indices.
func (n *Network) IndexCount() int { return len(n.Ranges) }

// String renders the network compactly, e.g. "[lam] Y(0,1) Y*(1,0) ranges=[3 3]".
func (n *Network) String() string {
	var sb strings.Builder
	if len(n.Prefix) > 0 {
		fmt.Fprintf(&sb, "%v ", n.Prefix)
	}
	conj := make(map[int]bool, len(n.Conj))
	for _, c := range n.Conj {
		conj[c] = true
	}
	for i, f := range n.Factors {
		star := ""
		if conj[i] {
			star = "*"
		}
		fmt.Fprintf(&sb, "%s%s(%d,%d) ", f, star, n.Indices[i][0], n.Indices[i][1])
	}
	fmt.Fprintf(&sb, "ranges=%v", n.Ranges)

	return sb.String()
}

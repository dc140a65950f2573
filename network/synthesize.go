// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/rgex/symbolic"
)

// Synthesize builds the contraction network of one term.
// The index allocator is local to the call, so ids always start at 0.
//
// Inputs:
//   - in: the classified term; Coupling names the coupling whose beta
//     function the term belongs to, Matrices is its open chain in order,
//     Traces its closed chains.
//   - structs: flavor structure lookup for every matrix-valued name.
//
// Returns:
//   - *Network: factors, pairs, ranges and conjugate positions, already
//     validated.
//
// Errors:
//   - ErrEmptyTrace, ErrUnknownCouplingStructure, ErrFlavorRangeConflict,
//     ErrUnresolvedIndex, ErrMalformedNetwork, each wrapped with the coupling.
func Synthesize(in Input, structs Structures) (*Network, error) {
	var alloc Allocator
	n := &Network{Symbols: append([]symbolic.Symbol(nil), in.Symbols...)}

	// 1) Matrix coupling takes (0,1) as factor 0; a scalar one goes to Prefix.
	var left, right Index
	if _, ok := structs.Structure(in.Coupling); ok {
		left, right = alloc.Next(), alloc.Next()
		n.Factors = append(n.Factors, in.Coupling)
		n.Indices = append(n.Indices, Pair{left, right})
	} else {
		n.Prefix = append(n.Prefix, in.Coupling)
		if len(in.Matrices) > 0 {
			// 1a) The chain's own ends become the term's open legs.
			left, right = alloc.Next(), alloc.Next()
		}
	}

	// 2) Open chain from left to right.
	for i, p := range alloc.chainPairs(left, right, len(in.Matrices)) {
		n.add(in.Matrices[i], p)
	}

	// 3) Every trace is a closed cycle of fresh indices.
	for t, tr := range in.Traces {
		if len(tr.Chain) == 0 {
			return nil, fmt.Errorf("network: Synthesize(%s): trace %d: %w", in.Coupling, t, ErrEmptyTrace)
		}
		positions := make([]int, 0, len(tr.Chain))
		for i, p := range alloc.loopPairs(len(tr.Chain)) {
			positions = append(positions, len(n.Factors))
			n.add(tr.Chain[i], p)
		}
		n.traces = append(n.traces, positions)
	}

	// 4) Ranges, then structural checks on the finished network.
	if err := n.resolveRanges(structs, alloc.Count()); err != nil {
		return nil, fmt.Errorf("network: Synthesize(%s): %w", in.Coupling, err)
	}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("network: Synthesize(%s): %w", in.Coupling, err)
	}

	return n, nil
}

// add appends one matrix factor, applying its transpose and conjugate modifiers.
func (n *Network) add(m symbolic.Matrix, p Pair) {
	if m.Transposed {
		p = p.Swap()
	}
	if m.Conjugated {
		n.Conj = append(n.Conj, len(n.Factors))
	}
	n.Factors = append(n.Factors, m.Base)
	n.Indices = append(n.Indices, p)
}

// resolveRanges zips every pair with its factor's flavor structure.
// count is the number of allocated ids; every one of them must end up with
// exactly one dimension.
func (n *Network) resolveRanges(structs Structures, count int) error {
	// 1) Bind each leg's id to the dimension of that leg.
	ranges := make(map[Index]int, count)
	for pos, pair := range n.Indices {
		name := n.Factors[pos]
		dims, ok := structs.Structure(name)
		if !ok {
			return fmt.Errorf("factor %d %q: %w", pos, name, ErrUnknownCouplingStructure)
		}
		for leg := 0; leg < len(pair) && leg < len(dims); leg++ {
			id, dim := pair[leg], dims[leg]
			// 1a) A second leg on the same id must agree with the first.
			if prev, seen := ranges[id]; seen && prev != dim {
				return fmt.Errorf("index %d of %q: range %d vs %d: %w", id, name, prev, dim, ErrFlavorRangeConflict)
			}
			ranges[id] = dim
		}
	}

	// 2) Flatten in id order; a gap means a leg had no dimension to offer.
	n.Ranges = make([]int, count)
	for id := 0; id < count; id++ {
		r, ok := ranges[Index(id)]
		if !ok {
			return fmt.Errorf("index %d: %w", id, ErrUnresolvedIndex)
		}
		n.Ranges[id] = r
	}

	return nil
}

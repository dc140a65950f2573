// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/katalvlaran/rgex/core"
	"github.com/katalvlaran/rgex/dfs"
)

// indexGraph is the multigraph view of a network: one vertex per index id,
// one edge per factor. A single-factor trace is a self-loop and Tr(A·Aᵀ)
// two parallel edges, so loops and multi-edges are enabled.
type indexGraph struct {
	*core.Graph
	position map[string]int // edge ID -> factor position
}

func vertexID(id Index) string { return strconv.Itoa(int(id)) }

// graph builds the index graph of the factors at positions, or of every
// factor when positions is nil. It is rebuilt on each call and never cached.
func (n *Network) graph(positions []int) (indexGraph, error) {
	if positions == nil {
		positions = make([]int, len(n.Indices))
		for i := range positions {
			positions[i] = i
		}
	}

	ig := indexGraph{
		Graph:    core.NewGraph(core.WithLoops(), core.WithMultiEdges()),
		position: make(map[string]int, len(positions)),
	}
	for _, pos := range positions {
		if pos < 0 || pos >= len(n.Indices) {
			return indexGraph{}, fmt.Errorf("factor position %d of %d: %w", pos, len(n.Indices), ErrMalformedNetwork)
		}
		p := n.Indices[pos]
		eid, err := ig.AddEdge(vertexID(p[0]), vertexID(p[1]))
		if err != nil {
			return indexGraph{}, fmt.Errorf("factor %d: %w", pos, err)
		}
		ig.position[eid] = pos
	}

	return ig, nil
}

// Validate checks the structural invariants of a synthesized network.
//
// Steps:
//  1. Every factor has exactly one index pair.
//  2. Every index joins at most two legs.
//  3. The open legs are either none (closed network) or two (one open chain).
//  4. Every trace is a connected component of its own and closes on itself.
//
// Any violation is reported as ErrMalformedNetwork.
func (n *Network) Validate() error {
	// 1) One pair per factor
	if len(n.Indices) != len(n.Factors) {
		return fmt.Errorf("%d factors, %d index pairs: %w", len(n.Factors), len(n.Indices), ErrMalformedNetwork)
	}
	g, err := n.graph(nil)
	if err != nil {
		return err
	}

	// 2) Degree bound, counting open legs on the way
	open, err := g.openLegs()
	if err != nil {
		return err
	}

	// 3) None or exactly two open legs
	if len(open) != 0 && len(open) != 2 {
		return fmt.Errorf("%d open legs: %w", len(open), ErrMalformedNetwork)
	}

	// 4) Traces: own component, closed cycle
	if len(n.traces) == 0 {
		return nil
	}
	comps, err := g.components()
	if err != nil {
		return err
	}
	own := make(map[int]bool, len(comps))
	for _, c := range comps {
		own[c[0]] = slices.Equal(c, n.traceAt(c[0]))
	}
	for t, positions := range n.traces {
		if !own[positions[0]] {
			return fmt.Errorf("trace %d shares indices outside its chain: %w", t, ErrMalformedNetwork)
		}
		closed, err := n.Closed(positions)
		if err != nil {
			return err
		}
		if !closed {
			return fmt.Errorf("trace %d is not a closed cycle: %w", t, ErrMalformedNetwork)
		}
	}

	return nil
}

// traceAt returns the trace starting at factor position pos, or nil.
func (n *Network) traceAt(pos int) []int {
	for _, t := range n.traces {
		if len(t) > 0 && t[0] == pos {
			return t
		}
	}

	return nil
}

// openLegs returns the indices used by exactly one leg, ascending, and
// fails when an index joins more than two legs.
func (g indexGraph) openLegs() ([]Index, error) {
	var out []Index
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		if err != nil {
			return nil, err
		}
		switch {
		case d > 2:
			return nil, fmt.Errorf("index %s joins %d legs: %w", v, d, ErrMalformedNetwork)
		case d == 1:
			id, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("index %q: %w", v, ErrMalformedNetwork)
			}
			out = append(out, Index(id))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// OpenLegs returns the indices used by exactly one leg, ascending.
func (n *Network) OpenLegs() ([]Index, error) {
	g, err := n.graph(nil)
	if err != nil {
		return nil, err
	}

	return g.openLegs()
}

// components walks the index graph once per unvisited vertex and maps each
// reached vertex set back to factor positions.
func (g indexGraph) components() ([][]int, error) {
	seen := make(map[string]bool, g.VertexCount())
	edges := g.Edges()

	var comps [][]int
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := dfs.DFS(g.Graph, v)
		if err != nil {
			return nil, err
		}
		var comp []int
		for _, e := range edges {
			if res.Visited[e.From] {
				comp = append(comp, g.position[e.ID])
			}
		}
		for id := range res.Visited {
			seen[id] = true
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps, nil
}

// Components groups factor positions that are connected through shared
// indices, ascending within each group and ordered by first member. A trace
// is always one component on its own; the coupling and its chain form another.
func (n *Network) Components() ([][]int, error) {
	g, err := n.graph(nil)
	if err != nil {
		return nil, err
	}

	return g.components()
}

// Closed reports whether the factors at positions form exactly one closed
// loop: every index they touch joins two legs in the whole network, and the
// factors alone form a single cycle through all of those indices.
func (n *Network) Closed(positions []int) (bool, error) {
	if len(positions) == 0 {
		return false, nil
	}
	whole, err := n.graph(nil)
	if err != nil {
		return false, err
	}
	sub, err := n.graph(positions)
	if err != nil {
		return false, err
	}

	// 1) No open leg among the touched indices
	for _, v := range sub.Vertices() {
		d, err := whole.Degree(v)
		if err != nil {
			return false, err
		}
		if d != 2 {
			return false, nil
		}
	}

	// 2) One cycle visiting every touched index
	has, cycles, err := dfs.DetectCycles(sub.Graph)
	if err != nil {
		return false, err
	}

	return has && len(cycles) == 1 && len(cycles[0])-1 == sub.VertexCount() && sub.EdgeCount() == sub.VertexCount(), nil
}

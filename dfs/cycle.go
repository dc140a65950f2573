// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rgex/core"
)

// DetectCycles inspects g for all simple cycles.
// Returns (true, cycles, nil) if any cycle is found, (false, nil, nil)
// otherwise. Each cycle is closed ([v0, ..., v0]) and canonical: the
// lexicographically smallest rotation of either direction. The list is
// sorted by signature.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	// 2) Prepare visitation state
	verts := g.Vertices()
	c := &cycleWalker{
		graph: g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}

	// 3) Launch DFS from each unvisited vertex
	for _, v := range verts {
		if c.state[v] != White {
			continue
		}
		if err := c.visit(v, ""); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
	}

	// 4) Deterministic order
	sort.Slice(c.cycles, func(i, j int) bool {
		return joinSig(c.cycles[i]) < joinSig(c.cycles[j])
	})

	if len(c.cycles) == 0 {
		return false, nil, nil
	}

	return true, c.cycles, nil
}

type cycleWalker struct {
	graph  *core.Graph
	state  map[string]int
	path   []string            // current DFS path
	seen   map[string]struct{} // canonical signatures already recorded
	cycles [][]string
}

// visit runs DFS from id, entered through edge via ("" for a root).
func (c *cycleWalker) visit(id, via string) error {
	// 1) Mark Gray and push onto the path
	c.state[id] = Gray
	c.path = append(c.path, id)

	// 2) Retrieve incident edges
	edges, err := c.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("Neighbors(%q): %w", id, err)
	}

	// 3) Explore every edge except the one we arrived on
	for _, e := range edges {
		if e.ID == via {
			continue
		}
		nbr := e.Other(id)

		switch c.state[nbr] {
		case White:
			// 3a) Tree edge: recurse
			if err = c.visit(nbr, e.ID); err != nil {
				return err
			}
		case Gray:
			// 3b) Back edge to an ancestor (or to id itself for a loop): record the cycle
			if nbr == id && !c.graph.Looped() {
				continue
			}
			c.record(nbr)
		}
		// 3c) Black: the cycle through this edge was recorded from the other side
	}

	// 4) Backtrack
	c.path = c.path[:len(c.path)-1]
	c.state[id] = Black

	return nil
}

// record extracts path[start:], canonicalizes and deduplicates it.
func (c *cycleWalker) record(start string) {
	idx := indexOf(c.path, start)
	seq := append([]string(nil), c.path[idx:]...)
	canon := canonical(seq)
	sig := joinSig(canon)
	if _, ok := c.seen[sig]; ok {
		return
	}
	c.seen[sig] = struct{}{}
	c.cycles = append(c.cycles, canon)
}

// canonical returns the smallest rotation of base or its reverse, closed by
// repeating its first vertex.
func canonical(base []string) []string {
	best := minRotation(base)
	if rev := minRotation(reverse(base)); compare(rev, best) < 0 {
		best = rev
	}

	return append(best, best[0])
}

// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/rgex/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	res   *DFSResult
}

// DFS performs depth-first search on g from startID and reports the
// connected component of startID in its Visited and Order fields.
func DFS(g *core.Graph, startID string) (*DFSResult, error) {
	// 1. Validate input graph and start vertex
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 2. Initialize result with capacity hint
	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}

	// 3. Traverse the single tree
	w := &dfsWalker{graph: g, res: res}
	if err := w.traverse(startID, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits vertex id at the given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 2. Fetch incident edges once
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}

	// 3. Explore the far end of each edge; loops lead back to id and are skipped
	for _, e := range nbs {
		nid := e.Other(id)
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	// 4. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}

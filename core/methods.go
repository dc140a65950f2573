// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// addVertexLocked inserts id once. Caller holds mu.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]struct{})
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge connects from and to, creating missing endpoints, and returns the
// new edge ID.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrLoopNotAllowed if from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed if the endpoints are already joined without WithMultiEdges.
//
// Complexity: O(deg(from)) when multi-edges are disabled, O(1) otherwise.
func (g *Graph) AddEdge(from, to string) (string, error) {
	// 1) Validate endpoints and policy flags before taking the lock.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Reject a parallel edge unless the graph is a multigraph.
	if !g.allowMulti && g.joinedLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	// 3) Ensure both endpoints exist.
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 4) Store the edge and index it from both endpoints (once for a loop).
	g.nextEdgeID++
	e := &Edge{ID: fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID), From: from, To: to, seq: g.nextEdgeID}
	g.edges[e.ID] = e
	g.adjacency[from][e.ID] = struct{}{}
	g.adjacency[to][e.ID] = struct{}{}

	return e.ID, nil
}

// joinedLocked reports whether an edge already joins from and to. Caller holds mu.
func (g *Graph) joinedLocked(from, to string) bool {
	for eid := range g.adjacency[from] {
		if g.edges[eid].Other(from) == to {
			return true
		}
	}

	return false
}

// Neighbors returns the edges incident to id in insertion order.
// A self-loop appears once.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(adj))
	for eid := range adj {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out, nil
}

// Degree returns the number of edge endpoints at id. A self-loop counts twice.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	deg := 0
	for eid := range adj {
		deg++
		if e := g.edges[eid]; e.From == e.To {
			deg++
		}
	}

	return deg, nil
}

// Vertices returns vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.order...)
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }


func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}

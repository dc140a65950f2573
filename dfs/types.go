// SPDX-License-Identifier: MIT

package dfs

import "errors"

// Vertex visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its tree distance from the start.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was discovered from.
	// The start vertex has no entry.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool
}

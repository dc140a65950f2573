// SPDX-License-Identifier: MIT

// Package core defines the undirected multigraph the index networks are
// checked on, with thread-safe primitives for building and querying it.
//
// What:
//
//	A Graph holds string-identified vertices and Edges between them.
//	Parallel edges and self-loops are opt-in (WithMultiEdges, WithLoops).
//	Every edge carries a stable ID ("e1", "e2", ...) in insertion order, so
//	Neighbors and Edges are deterministic.
//
// Why a multigraph:
//
//	A flavor network maps each index id to a vertex and each matrix factor to
//	an edge. Tr(Y) is a self-loop (i,i); Tr(Y·Yᵀ) is two parallel edges
//	(0,1),(0,1). Both shapes must be representable without loss.
//
// Concurrency:
//
//	One sync.RWMutex guards vertices, edges and adjacency. Readers never
//	observe a half-inserted edge.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

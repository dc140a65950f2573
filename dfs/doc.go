// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversal and cycle detection on the
// undirected multigraphs of package core.
//
// Key features:
//   - DFS(g, startID): single-source traversal with post-order, depth,
//     parent and visited bookkeeping.
//   - DetectCycles(g): every simple cycle, found with three-color marking
//     and back-edge detection, each reported once in canonical rotation.
//
// Multigraph rules:
//
//	Backtracking is suppressed by edge ID, not by parent vertex. A second
//	edge to the parent is therefore a genuine 2-cycle, and a self-loop is a
//	1-cycle when the graph permits loops. Index networks rely on both:
//	Tr(Y·Yᵀ) closes through two parallel edges and Tr(Y) through a loop.
//
// Complexity:
//
//   - DFS:          Time O(V + E), Memory O(V).
//   - DetectCycles: Time O(V + E + C·L²), Memory O(V + L_max)
//     (C cycles, L average cycle length).
//
// Errors:
//
//   - ErrGraphNil             if g is nil (DFS only).
//   - ErrStartVertexNotFound  if startID is missing.
package dfs

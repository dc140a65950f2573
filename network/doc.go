// SPDX-License-Identifier: MIT

// Package network synthesizes explicit flavor-index contraction networks for
// terms written in matrix notation.
//
// What:
//
//	A beta-function term such as  Y·Y†·Y  or  λ·Tr(Y·Yᵀ)  hides flavor sums in
//	matrix products. Synthesize makes every such sum explicit: each matrix
//	factor receives an ordered pair of index ids (row leg, column leg), every
//	index id receives a range (the dimension of the legs it joins), and the
//	positions of complex-conjugated factors are recorded. A consumer can then
//	enumerate the Cartesian product of all index ranges without knowing any
//	matrix algebra.
//
// Algorithm:
//
//  1. A fresh Allocator hands out ids 0, 1, 2, ... for one term only.
//  2. If the term's coupling is matrix-valued it takes ids (0,1) and becomes
//     factor 0; otherwise it is kept verbatim in Prefix.
//  3. The matrix chain M1·M2·…·Mk is an open path: consecutive factors share
//     one id and the two free ends are the coupling's legs. k = 1 reuses the
//     legs, k > 1 allocates k−1 internal ids. Without a matrix coupling the
//     chain allocates its own two ends first.
//  4. Transposed factors (transpose, adjoint) swap their pair; conjugated
//     factors (conjugate, adjoint) are flagged in Conj.
//  5. Every trace Tr(A1·…·Ak) is a closed cycle of k fresh ids: the right leg
//     of Ai is the left leg of A(i+1 mod k).
//  6. Ranges are resolved by zipping each pair with the factor's flavor
//     structure. Two legs bound to one id with different dimensions fail with
//     ErrFlavorRangeConflict.
//
// Example: λ·Tr(Y·Yᵀ) with Y of structure (3,3):
//
//	Prefix  = [λ]
//	Factors = [Y, Y]
//	Indices = [(0,1), (0,1)]     // cycle (0,1),(1,0); the transpose swaps the second
//	Ranges  = [3, 3]
//
// Complexity: O(F + L) per term (F matrix factors, L legs).
//
// Errors:
//
//   - ErrFlavorRangeConflict: one id bound to legs of different dimension.
//   - ErrUnknownCouplingStructure: a matrix factor without flavor structure.
//   - ErrUnresolvedIndex: an allocated id no leg gives a range to.
//   - ErrEmptyTrace: a trace with an empty chain.
//   - ErrMalformedNetwork: structural invariant violated (internal).
package network

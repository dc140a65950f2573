// SPDX-License-Identifier: MIT

// Package splitter turns beta functions into classified additive terms.
//
// For one coupling at one loop order the beta function β is rescaled to
//
//	β / BetaFactor · 1/(4π)^BetaExponent(loop+1)
//
// expanded through a symbolic.Provider, and cut into additive terms. Every
// factor of a term lands in exactly one bucket:
//
//	Number  → multiplied into the term's Coefficient
//	Matrix  → Matrices, left-to-right order kept
//	Trace   → Traces
//	Symbol  → Symbols
//
// A term without matrices and traces is Simple and never reaches the index
// synthesizer.
//
// The splitter refuses to work on a model whose RGE set is inconsistent
// (ErrInconsistentRGESet); the check happens before any term is touched.
package splitter

// SPDX-License-Identifier: MIT

// Package symbolic is the algebra capability consumed by the exporter.
//
// What:
//
//	Beta functions arrive as symbolic sums such as
//
//	    6*Tr(Y*H(Y))*lam - 3/2*pow(g1, 2)*Y + Y*H(Y)*Y
//
//	The exporter never simplifies physics; it only needs to expand such an
//	expression into additive terms and list the multiplicative factors of each.
//	This package defines that capability (Provider) and a small reference
//	implementation (Basic) for polynomial expressions with integer powers.
//
// Factor variants (closed set, matched exhaustively):
//
//   - Number: exact coefficient (rational · π^k), commuting.
//   - Symbol: named commuting quantity, optionally complex-conjugated.
//   - Matrix: named non-commuting flavor matrix with transpose/conjugate flags;
//     an adjoint carries both flags.
//   - Trace: trace of an ordered chain of Matrix factors.
//
// Composite expressions are Sum, Product, Power (integer exponent) and TraceOf
// (an unexpanded trace argument).
//
// Modifiers:
//
//	Transpose, Conjugate and Adjoint act on whole expressions. Transposing a
//	product reverses it, transposing twice is the identity, and conjugation
//	preserves factor order.
//
// Parsing:
//
//	Parse accepts Go expression syntax: numbers, pi, identifiers, + - * /,
//	parentheses and the calls pow(x, n), T(x), conj(x), H(x), Tr(x).
//	Division is allowed only by numeric expressions.
//
// Errors:
//
//   - ErrSyntax: source is not a valid expression.
//   - ErrUnsupported: construct outside the supported polynomial algebra.
//   - ErrNonNumericDivisor: division by a non-numeric expression.
//   - ErrTraceOperand: trace of something that is not a matrix chain.
//   - ErrNotExpanded: Factors called on a non-monomial.
package symbolic

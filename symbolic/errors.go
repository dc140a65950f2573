// SPDX-License-Identifier: MIT

package symbolic

import "errors"

var (
	// ErrSyntax indicates the source text is not a valid expression.
	ErrSyntax = errors.New("symbolic: syntax error")

	// ErrUnsupported indicates a construct outside the supported algebra
	// (unknown call, non-integer exponent, negative power of a symbol, ...).
	ErrUnsupported = errors.New("symbolic: unsupported construct")

	// ErrNonNumericDivisor indicates a division by an expression that is not a pure number.
	ErrNonNumericDivisor = errors.New("symbolic: divisor is not numeric")

	// ErrTraceOperand indicates a trace whose argument does not reduce to matrix chains.
	ErrTraceOperand = errors.New("symbolic: trace operand is not a matrix chain")

	// ErrNotExpanded indicates Factors was called on a sum or an unexpanded trace.
	ErrNotExpanded = errors.New("symbolic: expression is not an expanded monomial")
)

// SPDX-License-Identifier: MIT

// Package coeff provides the exact numeric prefactor attached to every term of
// an exported beta function.
//
// What:
//
//	A Coefficient is an exact rational number multiplied by an integer power of π:
//
//	    c = (p/q) · π^k,   p,q ∈ ℤ, q > 0, k ∈ ℤ
//
//	This is exactly the family of numbers produced when a beta function is
//	rescaled by the loop prefactor 1/(4π)^n and a rational normalization.
//
// Why:
//
//   - Terms are grouped by the value of their coefficient. Grouping on a typed
//     value keeps the grouping key independent of how an algebra back end happens
//     to print numbers.
//   - Text is produced only at the output boundary through String and Key.
//
// Rendering:
//
//	String() prints the value the way a symbolic algebra system does:
//
//	    6      -1/2      3/(8*pi**2)      pi**2/16
//
//	Key() prints the canonical aggregation key consumed by Python targets: a
//	decimal point follows the first integer literal that is not an exponent,
//	and π is qualified as cmath.pi:
//
//	    6.     -1./2     3./(8*cmath.pi**2)   cmath.pi**2/16.
//
// Errors:
//
//   - ErrZeroDenominator: New or Div with a zero divisor.
//   - ErrIncompatiblePi: Add on coefficients with different powers of π.
package coeff

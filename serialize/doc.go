// SPDX-License-Identifier: MIT

// Package serialize renders aggregated terms as a UFO running.py module.
//
// Layout of the output:
//
//	banner and imports
//	helper block            only when some entry is indexed
//	per non-empty category  '#'-framed title, then one Running element per coefficient key
//
// Running elements are named R<tag><i> (i counts from 1 within a category)
// and their value is the coefficient key, which is already valid Python.
//
// A simple entry is a list of parameters, [P.c, P.s1, P.s2]; conjugated
// symbols are wrapped in cc(...). An indexed entry expands through the
// generateYukTerm helper:
//
//	*generateYukTerm([[P.lam], [Y, Y], [P.g]], [(0, 1), (1, 0)], (3, 3), (1,))
//
// The last tuple lists conjugated factor positions and is omitted when
// empty. The helper block defines one accessor per matrix coupling
// referenced by a network, e.g.
//
//	Y = lambda i,j : P.__getattribute__('Y%dx%d' % (i+1, j+1))
//
// or, when the model maps explicit matrix elements, a literal table.
//
// The same Groups always serialize to the same bytes.
package serialize

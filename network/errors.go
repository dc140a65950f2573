// SPDX-License-Identifier: MIT

package network

import "errors"

var (
	// ErrFlavorRangeConflict indicates two legs forced onto the same index
	// with different declared dimensions. The model's flavor space is inconsistent.
	ErrFlavorRangeConflict = errors.New("network: flavor range conflict")

	// ErrUnknownCouplingStructure indicates a matrix factor with no registered flavor structure.
	ErrUnknownCouplingStructure = errors.New("network: unknown coupling structure")

	// ErrUnresolvedIndex indicates an allocated index that no leg assigns a range to.
	ErrUnresolvedIndex = errors.New("network: unresolved index range")

	// ErrEmptyTrace indicates a trace over an empty matrix chain.
	ErrEmptyTrace = errors.New("network: empty trace")

	// ErrMalformedNetwork indicates a violated structural invariant:
	// an index shared by more than two legs, or an odd number of open legs.
	ErrMalformedNetwork = errors.New("network: malformed network")
)

// SPDX-License-Identifier: MIT

package model

import "errors"

var (
	// ErrInvalidModel indicates the model description failed validation.
	ErrInvalidModel = errors.New("model: invalid model")

	// ErrUnknownCategory indicates an RGE table keyed by an unknown coupling category.
	ErrUnknownCategory = errors.New("model: unknown coupling category")

	// ErrUnknownCoupling indicates a beta function for a coupling that was never declared.
	ErrUnknownCoupling = errors.New("model: unknown coupling")

	// ErrDuplicateCoupling indicates the same coupling name declared twice.
	ErrDuplicateCoupling = errors.New("model: duplicate coupling")

	// ErrUnknownCouplingStructure indicates a reference to a coupling matrix
	// with no registered flavor structure.
	ErrUnknownCouplingStructure = errors.New("model: unknown coupling structure")

	// ErrBadMappingKey indicates a mapping key of the form base[i,j] that cannot be used.
	ErrBadMappingKey = errors.New("model: bad mapping key")
)

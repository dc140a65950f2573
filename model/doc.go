// SPDX-License-Identifier: MIT

// Package model holds the read-only description of a field-theory model as
// seen by the exporter: couplings and their flavor structures, beta functions
// per coupling category and loop order, the global normalization, and the
// external parameter mapping.
//
// A Model is assembled once, before export, and never mutated afterwards.
// It can be built in code or decoded from YAML (Load, Decode):
//
//	name: SM
//	betaFactor: "1"
//	betaExponent: {perLoop: 2}
//	couplings:
//	  - {name: g1}
//	  - {name: Yu, structure: [3, 3]}
//	rges:
//	  Yukawas:
//	    - {loop: 0, coupling: Yu, beta: "3/2*Yu*H(Yu)*Yu"}
//	mapping:
//	  g1: gp
//	  "Yu[2,2]": yt
//
// Errors:
//
//   - ErrInvalidModel: the file failed structural validation.
//   - ErrUnknownCategory: RGE table for an undeclared category.
//   - ErrUnknownCoupling: RGE for an undeclared coupling.
//   - ErrDuplicateCoupling: a coupling declared twice.
//   - ErrUnknownCouplingStructure: mapping element for a coupling without flavor structure.
//   - ErrBadMappingKey: malformed or out-of-range matrix element key.
package model

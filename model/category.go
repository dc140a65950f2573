// SPDX-License-Identifier: MIT

package model

import "strings"

// Category is a coupling-type category of beta functions.
type Category string

// Exported categories, in declared output order.
const (
	GaugeCouplings Category = "GaugeCouplings"
	Yukawas        Category = "Yukawas"
	QuarticTerms   Category = "QuarticTerms"
	TrilinearTerms Category = "TrilinearTerms"
	ScalarMasses   Category = "ScalarMasses"
	FermionMasses  Category = "FermionMasses"
	Vevs           Category = "Vevs"
)

// Anomalous-dimension categories may appear in a model but are never exported.
const (
	ScalarAnomalous  Category = "ScalarAnomalous"
	FermionAnomalous Category = "FermionAnomalous"
)

type categoryInfo struct {
	title string
	tag   string
}

var categories = map[Category]categoryInfo{
	GaugeCouplings: {"Gauge Couplings", "gauge"},
	Yukawas:        {"Yukawa Couplings", "yuk"},
	QuarticTerms:   {"Quartic Couplings", "quartic"},
	TrilinearTerms: {"Trilinear Couplings", "trilinear"},
	ScalarMasses:   {"Scalar Mass Couplings", "scalarMass"},
	FermionMasses:  {"Fermion Mass Couplings", "fermionMass"},
	Vevs:           {"Vacuum-expectation Values", "vev"},
}

var exportOrder = []Category{
	GaugeCouplings, Yukawas, QuarticTerms, TrilinearTerms, ScalarMasses, FermionMasses, Vevs,
}

// Categories returns the exported categories in their fixed output order.
func Categories() []Category {
	out := make([]Category, len(exportOrder))
	copy(out, exportOrder)

	return out
}

// Valid reports whether c is a known category, exported or anomalous.
func (c Category) Valid() bool {
	_, ok := categories[c]

	return ok || c == ScalarAnomalous || c == FermionAnomalous
}

// Exported reports whether terms of c appear in the output.
func (c Category) Exported() bool {
	_, ok := categories[c]

	return ok && !strings.Contains(string(c), "Anomalous")
}

// Title is the human-readable block title, e.g. "Yukawa Couplings".
func (c Category) Title() string { return categories[c].title }

// Tag is the short name used in generated identifiers, e.g. "yuk".
func (c Category) Tag() string { return categories[c].tag }

// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rgex/coeff"
	"github.com/katalvlaran/rgex/symbolic"
)

// DefaultLoopExponent is the power of 1/(4π) contributed by each loop order.
const DefaultLoopExponent = 2

// Coupling is a named coupling. An empty Structure means a scalar coupling;
// otherwise Structure lists the dimension of every flavor leg.
type Coupling struct {
	Name      string
	Structure []int
}

// Matrix reports whether the coupling carries flavor legs.
func (c Coupling) Matrix() bool { return len(c.Structure) > 0 }

// RGE is the beta function of one coupling at one loop order.
type RGE struct {
	Coupling string
	Beta     symbolic.Expr
}

// Model is the exporter's read-only view of a field theory.
type Model struct {
	Name string

	// BetaFactor divides every beta function.
	BetaFactor coeff.Coefficient

	// BetaExponent gives the power n of the loop prefactor 1/(4π)^n for a loop order (1-based).
	BetaExponent func(loop int) int

	// NonZeroCouplingRGEs and NonZeroDiagRGEs list couplings assumed to vanish
	// whose beta functions do not; any entry makes the RGE set inconsistent.
	NonZeroCouplingRGEs []string
	NonZeroDiagRGEs     []string

	// Mapping renames parameters (key "g1") or assigns matrix elements (key "Y[i,j]").
	Mapping map[string]string

	couplings []Coupling
	byName    map[string]int
	rges      map[Category]map[int][]RGE
}

// New returns an empty model with unit normalization and two powers of
// 1/(4π) per loop.
func New(name string) *Model {
	return &Model{
		Name:         name,
		BetaFactor:   coeff.One(),
		BetaExponent: func(loop int) int { return DefaultLoopExponent * loop },
		Mapping:      map[string]string{},
		byName:       map[string]int{},
		rges:         map[Category]map[int][]RGE{},
	}
}

// AddCoupling declares a coupling. Declaration order is kept.
func (m *Model) AddCoupling(name string, structure ...int) error {
	if _, ok := m.byName[name]; ok {
		return fmt.Errorf("model: AddCoupling(%q): %w", name, ErrDuplicateCoupling)
	}
	m.byName[name] = len(m.couplings)
	m.couplings = append(m.couplings, Coupling{Name: name, Structure: append([]int(nil), structure...)})

	return nil
}

// AddRGE records the beta function of coupling at a 0-based loop index.
func (m *Model) AddRGE(cat Category, loop int, coupling string, beta symbolic.Expr) error {
	if !cat.Valid() {
		return fmt.Errorf("model: AddRGE(%q): %w", cat, ErrUnknownCategory)
	}
	if _, ok := m.byName[coupling]; !ok {
		return fmt.Errorf("model: AddRGE(%s, %q): %w", cat, coupling, ErrUnknownCoupling)
	}
	if m.rges[cat] == nil {
		m.rges[cat] = map[int][]RGE{}
	}
	m.rges[cat][loop] = append(m.rges[cat][loop], RGE{Coupling: coupling, Beta: beta})

	return nil
}

// Couplings returns the declared couplings in declaration order.
func (m *Model) Couplings() []Coupling {
	out := make([]Coupling, len(m.couplings))
	copy(out, m.couplings)

	return out
}

// Structure returns the flavor structure of a matrix-valued coupling.
// The boolean is false for scalar and unknown couplings.
func (m *Model) Structure(name string) ([]int, bool) {
	i, ok := m.byName[name]
	if !ok || !m.couplings[i].Matrix() {
		return nil, false
	}

	return m.couplings[i].Structure, true
}

// IsMatrix reports whether name is a matrix-valued coupling.
func (m *Model) IsMatrix(name string) bool {
	_, ok := m.Structure(name)

	return ok
}

// Loops returns the loop indices present for cat, ascending.
func (m *Model) Loops(cat Category) []int {
	loops := make([]int, 0, len(m.rges[cat]))
	for l := range m.rges[cat] {
		loops = append(loops, l)
	}
	sort.Ints(loops)

	return loops
}

// RGEs returns the beta functions of cat at a loop index, in insertion order.
func (m *Model) RGEs(cat Category, loop int) []RGE {
	return m.rges[cat][loop]
}

// Kappa returns 1/(4π)^BetaExponent(loop) for a 1-based loop order.
func (m *Model) Kappa(loop int) coeff.Coefficient {
	return coeff.FourPiPow(m.BetaExponent(loop))
}

// Inconsistent reports whether the RGE set contradicts the model's assumptions.
func (m *Model) Inconsistent() bool {
	return len(m.NonZeroCouplingRGEs) > 0 || len(m.NonZeroDiagRGEs) > 0
}

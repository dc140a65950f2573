// SPDX-License-Identifier: MIT

package symbolic

import "fmt"

// Provider is the algebra capability the exporter depends on. Any computer
// algebra back end can implement it; Basic is the built-in implementation.
type Provider interface {
	// Expand distributes products over sums and collects like terms.
	Expand(e Expr) (Expr, error)

	// AdditiveTerms lists the summands of an expanded expression in order.
	AdditiveTerms(e Expr) []Expr

	// Factors lists the multiplicative factors of one expanded term.
	// Integer powers are split into repeated factors.
	Factors(term Expr) ([]Factor, error)

	// IsCommutative reports whether f commutes with every other factor.
	IsCommutative(f Factor) bool

	// Simplify returns a canonical form of e.
	Simplify(e Expr) (Expr, error)
}

// Basic is a polynomial Provider: integer powers, exact coefficients,
// ordered matrix products and traces of matrix chains.
type Basic struct{}

// NewBasic returns the built-in Provider.
func NewBasic() Basic { return Basic{} }

// Expand implements Provider.
func (Basic) Expand(e Expr) (Expr, error) {
	ms, err := monomials(e)
	if err != nil {
		return nil, err
	}
	ms, err = collect(ms)
	if err != nil {
		return nil, err
	}

	terms := make([]Expr, 0, len(ms))
	for _, m := range ms {
		terms = append(terms, m.expr())
	}

	return Sum{Terms: terms}, nil
}

// Simplify implements Provider. Basic's canonical form is the collected expansion.
func (b Basic) Simplify(e Expr) (Expr, error) {
	return b.Expand(e)
}

// AdditiveTerms implements Provider.
func (Basic) AdditiveTerms(e Expr) []Expr {
	switch v := e.(type) {
	case Sum:
		out := make([]Expr, 0, len(v.Terms))
		for _, t := range v.Terms {
			if n, ok := t.(Number); ok && n.Value.IsZero() {
				continue
			}
			out = append(out, t)
		}
		return out
	case Number:
		if v.Value.IsZero() {
			return nil
		}
	}

	return []Expr{e}
}

// Factors implements Provider.
func (Basic) Factors(term Expr) ([]Factor, error) {
	var out []Factor
	var walk func(e Expr) error
	walk = func(e Expr) error {
		switch v := e.(type) {
		case Number:
			out = append(out, v)
		case Symbol:
			out = append(out, v)
		case Matrix:
			out = append(out, v)
		case Trace:
			out = append(out, v)
		case Product:
			for _, f := range v.Factors {
				if err := walk(f); err != nil {
					return err
				}
			}
		case Power:
			if v.Exp < 0 {
				return fmt.Errorf("symbolic: Factors(%s): %w", v, ErrNotExpanded)
			}
			if err := checkPower(v); err != nil {
				return err
			}
			for i := 0; i < v.Exp; i++ {
				if err := walk(v.Base); err != nil {
					return err
				}
			}
		case Sum, TraceOf:
			return fmt.Errorf("symbolic: Factors(%s): %w", v, ErrNotExpanded)
		default:
			panic("symbolic: Factors: unknown expression variant")
		}

		return nil
	}
	if err := walk(term); err != nil {
		return nil, err
	}

	return out, nil
}

// IsCommutative implements Provider. Only matrices fail to commute.
func (Basic) IsCommutative(f Factor) bool {
	_, isMatrix := f.(Matrix)

	return !isMatrix
}

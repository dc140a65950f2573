// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/rgex/coeff"
)

// monomial is c · f1 · f2 · ... with no Number among the factors.
type monomial struct {
	c       coeff.Coefficient
	factors []Factor
}

func unit() monomial { return monomial{c: coeff.One()} }

func (m monomial) times(o monomial) monomial {
	fs := make([]Factor, 0, len(m.factors)+len(o.factors))
	fs = append(fs, m.factors...)
	fs = append(fs, o.factors...)

	return monomial{c: m.c.Mul(o.c), factors: fs}
}

func (m monomial) expr() Expr {
	fs := make([]Expr, 0, len(m.factors)+1)
	if !m.c.IsOne() {
		fs = append(fs, Num(m.c))
	}
	for _, f := range m.factors {
		fs = append(fs, f)
	}
	if len(fs) == 1 {
		return fs[0]
	}

	return Product{Factors: fs}
}

// canonical orders commuting factors (symbols, then traces, each by text)
// ahead of the matrices, whose relative order is kept.
func (m monomial) canonical() monomial {
	var syms, traces, mats []Factor
	for _, f := range m.factors {
		switch f.(type) {
		case Symbol:
			syms = append(syms, f)
		case Trace:
			traces = append(traces, f)
		case Matrix:
			mats = append(mats, f)
		}
	}
	byText := func(fs []Factor) {
		sort.SliceStable(fs, func(i, j int) bool { return fs[i].String() < fs[j].String() })
	}
	byText(syms)
	byText(traces)

	out := make([]Factor, 0, len(m.factors))
	out = append(out, syms...)
	out = append(out, traces...)
	out = append(out, mats...)

	return monomial{c: m.c, factors: out}
}

// signature identifies like terms: same power of π and the same canonical factors.
func (m monomial) signature() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		parts[i] = f.String()
	}

	return fmt.Sprintf("%d|%s", m.c.PiPower(), strings.Join(parts, "*"))
}

func monomials(e Expr) ([]monomial, error) {
	switch v := e.(type) {
	case Number:
		return []monomial{{c: v.Value}}, nil
	case Symbol, Matrix, Trace:
		return []monomial{{c: coeff.One(), factors: []Factor{v.(Factor)}}}, nil
	case Sum:
		var out []monomial
		for _, t := range v.Terms {
			ms, err := monomials(t)
			if err != nil {
				return nil, err
			}
			out = append(out, ms...)
		}
		return out, nil
	case Product:
		acc := []monomial{unit()}
		for _, f := range v.Factors {
			ms, err := monomials(f)
			if err != nil {
				return nil, err
			}
			next := make([]monomial, 0, len(acc)*len(ms))
			for _, a := range acc {
				for _, b := range ms {
					next = append(next, a.times(b))
				}
			}
			acc = next
		}
		return acc, nil
	case Power:
		return powerMonomials(v)
	case TraceOf:
		return traceMonomials(v)
	}
	panic("symbolic: monomials: unknown expression variant")
}

// MaxPower bounds n in pow(x, n) for a non-numeric base x.
const MaxPower = 64

// powerMonomials expands pow(base, n).
//
// Steps:
//  1. A numeric base is evaluated exactly, any integer n.
//  2. Otherwise n must lie in [1, MaxPower], or be 0 for a base without
//     matrices: a zero power of a matrix is the identity, which has no factor form.
//  3. n copies of the base are multiplied out.
func powerMonomials(p Power) ([]monomial, error) {
	// 1) Numbers
	if c, ok := NumericValue(p.Base); ok {
		if c.IsZero() && p.Exp < 0 {
			return nil, fmt.Errorf("symbolic: %s: %w", p, ErrUnsupported)
		}
		return []monomial{{c: c.Pow(p.Exp)}}, nil
	}

	// 2) Exponent range
	if err := checkPower(p); err != nil {
		return nil, err
	}
	if p.Exp == 0 {
		base, err := monomials(p.Base)
		if err != nil {
			return nil, err
		}
		for _, m := range base {
			for _, f := range m.factors {
				if _, isMatrix := f.(Matrix); isMatrix {
					return nil, fmt.Errorf("symbolic: %s: zero power of a matrix: %w", p, ErrUnsupported)
				}
			}
		}
		return []monomial{unit()}, nil
	}

	// 3) Repeated product
	factors := make([]Expr, p.Exp)
	for i := range factors {
		factors[i] = p.Base
	}

	return monomials(Product{Factors: factors})
}

// checkPower rejects negative and oversized exponents of a non-numeric base.
func checkPower(p Power) error {
	if p.Exp < 0 || p.Exp > MaxPower {
		return fmt.Errorf("symbolic: %s: exponent outside [0, %d]: %w", p, MaxPower, ErrUnsupported)
	}

	return nil
}

// traceMonomials expands Tr(arg) linearly: numbers and commuting factors are
// pulled out, the matrices of each monomial form the trace chain.
func traceMonomials(t TraceOf) ([]monomial, error) {
	inner, err := monomials(t.Arg)
	if err != nil {
		return nil, err
	}
	out := make([]monomial, 0, len(inner))
	for _, m := range inner {
		var chain []Matrix
		var rest []Factor
		for _, f := range m.factors {
			switch v := f.(type) {
			case Matrix:
				chain = append(chain, v)
			case Symbol:
				rest = append(rest, v)
			case Trace:
				return nil, fmt.Errorf("symbolic: %s: nested trace: %w", t, ErrTraceOperand)
			}
		}
		if len(chain) == 0 {
			return nil, fmt.Errorf("symbolic: %s: %w", t, ErrTraceOperand)
		}
		out = append(out, monomial{c: m.c, factors: append(rest, Trace{Chain: chain})})
	}

	return out, nil
}

// collect merges like terms, keeping the first-appearance order of signatures
// and dropping terms whose coefficients cancel.
func collect(ms []monomial) ([]monomial, error) {
	// 1) Merge monomials with equal factor signatures, keeping first-seen order.
	index := make(map[string]int, len(ms))
	out := make([]monomial, 0, len(ms))
	for _, m := range ms {
		if m.c.IsZero() {
			continue
		}
		// 1a) Commuting factors are sorted first so Y*g and g*Y share a signature.
		m = m.canonical()
		sig := m.signature()
		if i, ok := index[sig]; ok {
			sum, err := out[i].c.Add(m.c)
			if err != nil {
				return nil, err
			}
			out[i].c = sum
			continue
		}
		index[sig] = len(out)
		out = append(out, m)
	}

	// 2) Drop terms that cancelled to zero.
	kept := out[:0]
	for _, m := range out {
		if !m.c.IsZero() {
			kept = append(kept, m)
		}
	}

	return kept, nil
}

// NumericValue evaluates e when it is built only from numbers, products,
// integer powers and sums of equal powers of π.
func NumericValue(e Expr) (coeff.Coefficient, bool) {
	switch v := e.(type) {
	case Number:
		return v.Value, true
	case Product:
		acc := coeff.One()
		for _, f := range v.Factors {
			c, ok := NumericValue(f)
			if !ok {
				return coeff.Coefficient{}, false
			}
			acc = acc.Mul(c)
		}
		return acc, true
	case Power:
		c, ok := NumericValue(v.Base)
		if !ok || (c.IsZero() && v.Exp < 0) {
			return coeff.Coefficient{}, false
		}
		return c.Pow(v.Exp), true
	case Sum:
		var acc coeff.Coefficient
		for _, t := range v.Terms {
			c, ok := NumericValue(t)
			if !ok {
				return coeff.Coefficient{}, false
			}
			sum, err := acc.Add(c)
			if err != nil {
				return coeff.Coefficient{}, false
			}
			acc = sum
		}
		return acc, true
	}

	return coeff.Coefficient{}, false
}

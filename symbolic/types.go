// SPDX-License-Identifier: MIT

package symbolic

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/rgex/coeff"
)

// Expr is any symbolic expression. The set of implementations is closed.
type Expr interface {
	String() string
	isExpr()
}

// Factor is an atomic multiplicative factor of an expanded term.
// Implementations: Number, Symbol, Matrix, Trace.
type Factor interface {
	Expr
	isFactor()
}

// Number is an exact numeric factor.
type Number struct {
	Value coeff.Coefficient
}

// Symbol is a commuting named quantity such as a gauge coupling.
type Symbol struct {
	Name string
	Conj bool
}

// Matrix is a non-commuting flavor matrix. Transposed and Conjugated together
// describe the adjoint.
type Matrix struct {
	Base       string
	Transposed bool
	Conjugated bool
}

// Trace is the trace of an ordered product of matrices.
type Trace struct {
	Chain []Matrix
}

// Sum is an ordered sum of expressions.
type Sum struct {
	Terms []Expr
}

// Product is an ordered product of expressions. Order matters for matrices.
type Product struct {
	Factors []Expr
}

// Power is Base raised to an integer exponent.
type Power struct {
	Base Expr
	Exp  int
}

// TraceOf is a trace whose argument has not been expanded yet.
type TraceOf struct {
	Arg Expr
}

func (Number) isExpr()  {}
func (Symbol) isExpr()  {}
func (Matrix) isExpr()  {}
func (Trace) isExpr()   {}
func (Sum) isExpr()     {}
func (Product) isExpr() {}
func (Power) isExpr()   {}
func (TraceOf) isExpr() {}

func (Number) isFactor() {}
func (Symbol) isFactor() {}
func (Matrix) isFactor() {}
func (Trace) isFactor()  {}

// Num wraps a coefficient as a Number.
func Num(c coeff.Coefficient) Number { return Number{Value: c} }

// Int is shorthand for an integer Number.
func Int(n int64) Number { return Number{Value: coeff.Int(n)} }

func (n Number) String() string { return n.Value.String() }

func (s Symbol) String() string {
	if s.Conj {
		return "conjugate(" + s.Name + ")"
	}

	return s.Name
}

// Adjoint reports whether both modifiers are set.
func (m Matrix) Adjoint() bool { return m.Transposed && m.Conjugated }

func (m Matrix) String() string {
	switch {
	case m.Adjoint():
		return "adjoint(" + m.Base + ")"
	case m.Transposed:
		return "transpose(" + m.Base + ")"
	case m.Conjugated:
		return "conjugate(" + m.Base + ")"
	}

	return m.Base
}

func (t Trace) String() string {
	parts := make([]string, len(t.Chain))
	for i, m := range t.Chain {
		parts[i] = m.String()
	}

	return "Trace(" + strings.Join(parts, "*") + ")"
}

func (s Sum) String() string {
	if len(s.Terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range s.Terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(t.String())
	}

	return sb.String()
}

func (p Product) String() string {
	if len(p.Factors) == 0 {
		return "1"
	}
	parts := make([]string, len(p.Factors))
	for i, f := range p.Factors {
		s := f.String()
		if _, ok := f.(Sum); ok {
			s = "(" + s + ")"
		}
		parts[i] = s
	}

	return strings.Join(parts, "*")
}

func (p Power) String() string {
	base := p.Base.String()
	switch p.Base.(type) {
	case Symbol, Matrix, Trace, TraceOf:
	default:
		base = "(" + base + ")"
	}

	return base + "**" + strconv.Itoa(p.Exp)
}

func (t TraceOf) String() string { return "Trace(" + t.Arg.String() + ")" }

// SPDX-License-Identifier: MIT

package symbolic

// Transpose returns eᵀ. Products are reversed, scalars and traces are unchanged.
func Transpose(e Expr) Expr {
	switch v := e.(type) {
	case Matrix:
		v.Transposed = !v.Transposed
		return v
	case Product:
		out := make([]Expr, len(v.Factors))
		for i, f := range v.Factors {
			out[len(v.Factors)-1-i] = Transpose(f)
		}
		return Product{Factors: out}
	case Sum:
		return Sum{Terms: mapExprs(v.Terms, Transpose)}
	case Power:
		return Power{Base: Transpose(v.Base), Exp: v.Exp}
	case Number, Symbol, Trace, TraceOf:
		return e
	}
	panic("symbolic: Transpose: unknown expression variant")
}

// Conjugate returns the complex conjugate of e, preserving factor order.
func Conjugate(e Expr) Expr {
	switch v := e.(type) {
	case Matrix:
		v.Conjugated = !v.Conjugated
		return v
	case Symbol:
		v.Conj = !v.Conj
		return v
	case Number:
		return v
	case Trace:
		chain := make([]Matrix, len(v.Chain))
		for i, m := range v.Chain {
			chain[i] = Conjugate(m).(Matrix)
		}
		return Trace{Chain: chain}
	case TraceOf:
		return TraceOf{Arg: Conjugate(v.Arg)}
	case Product:
		return Product{Factors: mapExprs(v.Factors, Conjugate)}
	case Sum:
		return Sum{Terms: mapExprs(v.Terms, Conjugate)}
	case Power:
		return Power{Base: Conjugate(v.Base), Exp: v.Exp}
	}
	panic("symbolic: Conjugate: unknown expression variant")
}

// Adjoint returns the conjugate transpose of e.
func Adjoint(e Expr) Expr { return Conjugate(Transpose(e)) }

func mapExprs(in []Expr, fn func(Expr) Expr) []Expr {
	out := make([]Expr, len(in))
	for i, e := range in {
		out[i] = fn(e)
	}

	return out
}

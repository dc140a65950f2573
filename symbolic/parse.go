// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math/big"
	"strconv"

	"github.com/katalvlaran/rgex/coeff"
)

// MatrixPredicate reports whether an identifier names a flavor matrix.
type MatrixPredicate func(name string) bool

// Parse reads src in Go expression syntax. Identifiers for which isMatrix
// reports true become Matrix factors, the others Symbol factors; "pi" is π.
// A nil predicate treats every identifier as a commuting symbol.
func Parse(src string, isMatrix MatrixPredicate) (Expr, error) {
	node, err := parser.ParseExpr(src)
	if err != nil {
		return nil, fmt.Errorf("symbolic: Parse(%q): %w: %v", src, ErrSyntax, err)
	}
	if isMatrix == nil {
		isMatrix = func(string) bool { return false }
	}
	p := exprParser{isMatrix: isMatrix}
	e, err := p.convert(node)
	if err != nil {
		return nil, fmt.Errorf("symbolic: Parse(%q): %w", src, err)
	}

	return e, nil
}

type exprParser struct {
	isMatrix MatrixPredicate
}

func (p exprParser) convert(n ast.Expr) (Expr, error) {
	switch v := n.(type) {
	case *ast.BasicLit:
		return literal(v)
	case *ast.Ident:
		return p.ident(v.Name), nil
	case *ast.ParenExpr:
		return p.convert(v.X)
	case *ast.UnaryExpr:
		x, err := p.convert(v.X)
		if err != nil {
			return nil, err
		}
		switch v.Op {
		case token.ADD:
			return x, nil
		case token.SUB:
			return negate(x), nil
		}
		return nil, fmt.Errorf("unary %s: %w", v.Op, ErrUnsupported)
	case *ast.BinaryExpr:
		return p.binary(v)
	case *ast.CallExpr:
		return p.call(v)
	}

	return nil, fmt.Errorf("%T: %w", n, ErrUnsupported)
}

func (p exprParser) ident(name string) Expr {
	switch {
	case name == "pi":
		return Num(coeff.Pi(1))
	case p.isMatrix(name):
		return Matrix{Base: name}
	}

	return Symbol{Name: name}
}

func literal(lit *ast.BasicLit) (Expr, error) {
	switch lit.Kind {
	case token.INT:
		n, err := strconv.ParseInt(lit.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("literal %s: %w", lit.Value, ErrSyntax)
		}
		return Int(n), nil
	case token.FLOAT:
		r, ok := new(big.Rat).SetString(lit.Value)
		if !ok {
			return nil, fmt.Errorf("literal %s: %w", lit.Value, ErrSyntax)
		}
		return Num(coeff.FromRat(r)), nil
	}

	return nil, fmt.Errorf("literal %s: %w", lit.Value, ErrUnsupported)
}

func (p exprParser) binary(b *ast.BinaryExpr) (Expr, error) {
	l, err := p.convert(b.X)
	if err != nil {
		return nil, err
	}
	r, err := p.convert(b.Y)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case token.ADD:
		return sumOf(l, r), nil
	case token.SUB:
		return sumOf(l, negate(r)), nil
	case token.MUL:
		return productOf(l, r), nil
	case token.QUO:
		d, ok := NumericValue(r)
		if !ok {
			return nil, fmt.Errorf("%s / %s: %w", l, r, ErrNonNumericDivisor)
		}
		inv, err := coeff.One().Div(d)
		if err != nil {
			return nil, fmt.Errorf("%s / %s: %w", l, r, err)
		}
		return productOf(l, Num(inv)), nil
	}

	return nil, fmt.Errorf("operator %s: %w", b.Op, ErrUnsupported)
}

func (p exprParser) call(c *ast.CallExpr) (Expr, error) {
	fn, ok := c.Fun.(*ast.Ident)
	if !ok {
		return nil, fmt.Errorf("call of %T: %w", c.Fun, ErrUnsupported)
	}

	if fn.Name == "pow" {
		if len(c.Args) != 2 {
			return nil, fmt.Errorf("pow expects 2 arguments: %w", ErrUnsupported)
		}
		base, err := p.convert(c.Args[0])
		if err != nil {
			return nil, err
		}
		exp, err := p.convert(c.Args[1])
		if err != nil {
			return nil, err
		}
		n, ok := integerValue(exp)
		if !ok {
			return nil, fmt.Errorf("pow exponent %s: %w", exp, ErrUnsupported)
		}
		return Power{Base: base, Exp: n}, nil
	}

	if len(c.Args) != 1 {
		return nil, fmt.Errorf("%s expects 1 argument: %w", fn.Name, ErrUnsupported)
	}
	arg, err := p.convert(c.Args[0])
	if err != nil {
		return nil, err
	}
	switch fn.Name {
	case "T", "transpose":
		return Transpose(arg), nil
	case "conj", "conjugate":
		return Conjugate(arg), nil
	case "H", "adj", "adjoint", "Dagger":
		return Adjoint(arg), nil
	case "Tr", "trace", "Trace":
		return TraceOf{Arg: arg}, nil
	}

	return nil, fmt.Errorf("unknown function %s: %w", fn.Name, ErrUnsupported)
}

func integerValue(e Expr) (int, bool) {
	c, ok := NumericValue(e)
	if !ok {
		return 0, false
	}
	if c.IsZero() {
		return 0, true
	}
	r := c.Rat()
	if c.PiPower() != 0 || !r.IsInt() || !r.Num().IsInt64() {
		return 0, false
	}

	return int(r.Num().Int64()), true
}

// negate returns -e, folding numbers directly.
func negate(e Expr) Expr {
	if c, ok := NumericValue(e); ok {
		return Num(c.Neg())
	}

	return productOf(Int(-1), e)
}

// productOf flattens nested products and folds purely numeric operands.
func productOf(l, r Expr) Expr {
	lc, lok := NumericValue(l)
	rc, rok := NumericValue(r)
	if lok && rok {
		return Num(lc.Mul(rc))
	}

	var fs []Expr
	for _, e := range []Expr{l, r} {
		if p, ok := e.(Product); ok {
			fs = append(fs, p.Factors...)
			continue
		}
		fs = append(fs, e)
	}

	return Product{Factors: fs}
}

// sumOf flattens nested sums and folds numeric operands with equal powers of π.
func sumOf(l, r Expr) Expr {
	lc, lok := NumericValue(l)
	rc, rok := NumericValue(r)
	if lok && rok {
		if c, err := lc.Add(rc); err == nil {
			return Num(c)
		}
	}

	var ts []Expr
	for _, e := range []Expr{l, r} {
		if s, ok := e.(Sum); ok {
			ts = append(ts, s.Terms...)
			continue
		}
		ts = append(ts, e)
	}

	return Sum{Terms: ts}
}

// SPDX-License-Identifier: MIT

package coeff

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrZeroDenominator indicates a division by an exact zero.
	ErrZeroDenominator = errors.New("coeff: zero denominator")

	// ErrIncompatiblePi indicates an addition of coefficients carrying different powers of π.
	ErrIncompatiblePi = errors.New("coeff: incompatible powers of pi")
)

const (
	piPlain     = "pi"
	piQualified = "cmath.pi"
)

// Coefficient is an exact value (p/q)·π^k. The zero value is 0.
// Coefficients are immutable: every operation returns a fresh value.
type Coefficient struct {
	r  *big.Rat // nil means 0
	pi int      // power of π
}

// New returns num/den. It fails with ErrZeroDenominator when den == 0.
func New(num, den int64) (Coefficient, error) {
	if den == 0 {
		return Coefficient{}, ErrZeroDenominator
	}

	return fromRat(big.NewRat(num, den), 0), nil
}

// Int returns the integer n as a Coefficient.
func Int(n int64) Coefficient {
	return fromRat(new(big.Rat).SetInt64(n), 0)
}

// One is the multiplicative identity.
func One() Coefficient { return Int(1) }

// Pi returns π^k.
func Pi(k int) Coefficient {
	return fromRat(new(big.Rat).SetInt64(1), k)
}

// FromRat wraps a copy of r.
func FromRat(r *big.Rat) Coefficient {
	if r == nil {
		return Coefficient{}
	}

	return fromRat(new(big.Rat).Set(r), 0)
}

// FourPiPow returns 1/(4π)^n, the loop prefactor of an n-th power.
func FourPiPow(n int) Coefficient {
	return Int(4).Mul(Pi(1)).Pow(-n)
}

func fromRat(r *big.Rat, pi int) Coefficient {
	if r.Sign() == 0 {
		return Coefficient{}
	}

	return Coefficient{r: r, pi: pi}
}

func (c Coefficient) rat() *big.Rat {
	if c.r == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(c.r)
}

// Rat returns a copy of the rational part.
func (c Coefficient) Rat() *big.Rat { return c.rat() }

// PiPower returns k in (p/q)·π^k. It is 0 for the zero coefficient.
func (c Coefficient) PiPower() int { return c.pi }

// IsZero reports whether c == 0.
func (c Coefficient) IsZero() bool { return c.r == nil || c.r.Sign() == 0 }

// IsOne reports whether c == 1.
func (c Coefficient) IsOne() bool {
	return !c.IsZero() && c.pi == 0 && c.r.Cmp(big.NewRat(1, 1)) == 0
}

// Sign returns -1, 0 or +1.
func (c Coefficient) Sign() int {
	if c.IsZero() {
		return 0
	}

	return c.r.Sign()
}

// Equal reports exact equality.
func (c Coefficient) Equal(o Coefficient) bool {
	if c.IsZero() || o.IsZero() {
		return c.IsZero() && o.IsZero()
	}

	return c.pi == o.pi && c.r.Cmp(o.r) == 0
}

// Neg returns -c.
func (c Coefficient) Neg() Coefficient {
	return fromRat(new(big.Rat).Neg(c.rat()), c.pi)
}

// Mul returns c·o.
func (c Coefficient) Mul(o Coefficient) Coefficient {
	if c.IsZero() || o.IsZero() {
		return Coefficient{}
	}

	return fromRat(new(big.Rat).Mul(c.r, o.r), c.pi+o.pi)
}

// Div returns c/o, failing with ErrZeroDenominator when o == 0.
func (c Coefficient) Div(o Coefficient) (Coefficient, error) {
	if o.IsZero() {
		return Coefficient{}, ErrZeroDenominator
	}
	if c.IsZero() {
		return Coefficient{}, nil
	}

	return fromRat(new(big.Rat).Quo(c.r, o.r), c.pi-o.pi), nil
}

// Pow returns c^n for any integer n. 0^n is 0 for n > 0 and 1 for n == 0;
// a negative power of zero yields 0 as well, callers never divide by it.
func (c Coefficient) Pow(n int) Coefficient {
	if n == 0 {
		return One()
	}
	if c.IsZero() {
		return Coefficient{}
	}

	base := c.rat()
	if n < 0 {
		base.Inv(base)
	}
	m := n
	if m < 0 {
		m = -m
	}
	num := new(big.Int).Exp(base.Num(), big.NewInt(int64(m)), nil)
	den := new(big.Int).Exp(base.Denom(), big.NewInt(int64(m)), nil)

	return fromRat(new(big.Rat).SetFrac(num, den), c.pi*n)
}

// Add returns c+o. Both operands must carry the same power of π unless one is zero.
func (c Coefficient) Add(o Coefficient) (Coefficient, error) {
	switch {
	case c.IsZero():
		return o, nil
	case o.IsZero():
		return c, nil
	case c.pi != o.pi:
		return Coefficient{}, ErrIncompatiblePi
	}

	return fromRat(new(big.Rat).Add(c.r, o.r), c.pi), nil
}

// String renders c in algebra-system notation, e.g. "3/(8*pi**2)".
func (c Coefficient) String() string { return c.render(false) }

// Key renders the canonical aggregation key, e.g. "3./(8*cmath.pi**2)".
func (c Coefficient) Key() string { return c.render(true) }

func (c Coefficient) render(key bool) string {
	piName := piPlain
	if key {
		piName = piQualified
	}

	// Only the first integer literal that is not an exponent receives the decimal point.
	dotted := false
	lit := func(n *big.Int) string {
		s := n.String()
		if key && !dotted {
			dotted = true
			s += "."
		}

		return s
	}
	piTerm := func(m int) string {
		if m == 1 {
			return piName
		}

		return piName + "**" + strconv.Itoa(m)
	}

	if c.IsZero() {
		return lit(big.NewInt(0))
	}

	num := new(big.Int).Abs(c.r.Num())
	den := c.r.Denom()
	one := big.NewInt(1)

	var sb strings.Builder
	if c.Sign() < 0 {
		sb.WriteByte('-')
	}

	switch {
	case c.pi == 0:
		sb.WriteString(lit(num))
		if den.Cmp(one) != 0 {
			sb.WriteString("/" + lit(den))
		}
	case c.pi > 0:
		if num.Cmp(one) != 0 {
			sb.WriteString(lit(num) + "*")
		}
		sb.WriteString(piTerm(c.pi))
		if den.Cmp(one) != 0 {
			sb.WriteString("/" + lit(den))
		}
	default:
		sb.WriteString(lit(num) + "/")
		if den.Cmp(one) == 0 {
			sb.WriteString(piTerm(-c.pi))
		} else {
			sb.WriteString("(" + lit(den) + "*" + piTerm(-c.pi) + ")")
		}
	}

	return sb.String()
}

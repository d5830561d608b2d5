// Package numeric provides the exact rational arithmetic used throughout
// akatsuki's geometry core.
//
// # Overview
//
// Every coordinate, area, and intermediate quantity in the judge is an
// arbitrary-precision rational: the silhouette Boolean engine composes many
// intersections and area sums, and any rounding at an intermediate step
// would make the final resemblance score unsound. [Number] wraps [big.Rat]
// and keeps it reduced to lowest terms with a positive denominator after
// every operation, so equality is always exact and there is no epsilon.
//
// # Why not floating point
//
// The judge's Non-goals explicitly rule out tolerance-based predicates:
// two polygons either share a point or they don't, and a facet either
// covers the unit square or it doesn't. float64 cannot make that
// distinction reliably once a handful of sweeps have composed. No example
// in this module's ancestry performs arbitrary-precision rational
// arithmetic, so Number is built directly on the standard library's
// math/big, which is the only type in the Go ecosystem that offers exact,
// arbitrary-precision fractions without pulling in a bespoke numerics
// dependency.
package numeric

import (
	"fmt"
	"math/big"
	"strings"
)

// Number is an exact rational value, always kept in canonical (reduced,
// positive-denominator) form.
type Number struct {
	r *big.Rat
}

// Zero is the additive identity.
func Zero() Number { return Number{r: new(big.Rat)} }

// One is the multiplicative identity.
func One() Number { return FromInt64(1) }

// FromInt64 builds a Number from a machine integer.
func FromInt64(n int64) Number {
	return Number{r: new(big.Rat).SetInt64(n)}
}

// FromFrac builds a Number from a numerator and a non-zero denominator,
// reducing it to canonical form.
func FromFrac(num, den int64) Number {
	if den == 0 {
		panic(fmt.Errorf("numeric: zero denominator"))
	}
	return Number{r: new(big.Rat).SetFrac64(num, den)}
}

// FromBigRat builds a Number from a copy of r, so later changes to r do
// not affect the result. A nil r yields zero.
func FromBigRat(r *big.Rat) Number {
	if r == nil {
		return Zero()
	}
	return Number{r: new(big.Rat).Set(r)}
}

// Parse reads a Number from its text form: either an integer ("12",
// "-3") or a fraction "p/q" with q > 0. This is the format used by both
// the problem and solution text formats (see package format).
func Parse(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, fmt.Errorf("numeric: empty number")
	}
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		numStr, denStr := s[:idx], s[idx+1:]
		num, ok := new(big.Int).SetString(numStr, 10)
		if !ok {
			return Number{}, fmt.Errorf("numeric: invalid numerator %q", numStr)
		}
		den, ok := new(big.Int).SetString(denStr, 10)
		if !ok {
			return Number{}, fmt.Errorf("numeric: invalid denominator %q", denStr)
		}
		if den.Sign() <= 0 {
			return Number{}, fmt.Errorf("numeric: denominator must be positive, got %q", denStr)
		}
		return Number{r: new(big.Rat).SetFrac(num, den)}, nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Number{}, fmt.Errorf("numeric: invalid integer %q", s)
	}
	return Number{r: new(big.Rat).SetInt(n)}, nil
}

func (n Number) rat() *big.Rat {
	if n.r == nil {
		return new(big.Rat)
	}
	return n.r
}

// Add returns n + m.
func (n Number) Add(m Number) Number {
	return Number{r: new(big.Rat).Add(n.rat(), m.rat())}
}

// Sub returns n - m.
func (n Number) Sub(m Number) Number {
	return Number{r: new(big.Rat).Sub(n.rat(), m.rat())}
}

// Mul returns n * m.
func (n Number) Mul(m Number) Number {
	return Number{r: new(big.Rat).Mul(n.rat(), m.rat())}
}

// Quo returns n / m. Panics if m is zero, mirroring the original judge's
// assumption that division only ever happens on a known-nonzero union
// area.
func (n Number) Quo(m Number) Number {
	if m.IsZero() {
		panic(fmt.Errorf("numeric: division by zero"))
	}
	return Number{r: new(big.Rat).Quo(n.rat(), m.rat())}
}

// Neg returns -n.
func (n Number) Neg() Number {
	return Number{r: new(big.Rat).Neg(n.rat())}
}

// Halve returns n / 2.
func (n Number) Halve() Number {
	return Number{r: new(big.Rat).Mul(n.rat(), big.NewRat(1, 2))}
}

// Cmp compares n and m: -1, 0, or 1.
func (n Number) Cmp(m Number) int {
	return n.rat().Cmp(m.rat())
}

// Equal reports whether n and m denote the same rational value.
func (n Number) Equal(m Number) bool {
	return n.Cmp(m) == 0
}

// Sign returns -1, 0, or 1 according to the sign of n.
func (n Number) Sign() int {
	return n.rat().Sign()
}

// IsZero reports whether n is exactly zero.
func (n Number) IsZero() bool {
	return n.Sign() == 0
}

// Less reports whether n < m.
func (n Number) Less(m Number) bool {
	return n.Cmp(m) < 0
}

// LessOrEqual reports whether n <= m.
func (n Number) LessOrEqual(m Number) bool {
	return n.Cmp(m) <= 0
}

// Greater reports whether n > m.
func (n Number) Greater(m Number) bool {
	return n.Cmp(m) > 0
}

// GreaterOrEqual reports whether n >= m.
func (n Number) GreaterOrEqual(m Number) bool {
	return n.Cmp(m) >= 0
}

// NumDen returns the canonical numerator and denominator.
func (n Number) NumDen() (num, den *big.Int) {
	return n.rat().Num(), n.rat().Denom()
}

// ScaledFloor computes scale * n truncated toward zero as a machine
// integer, in the same way the original evaluator's integer division
// does; for non-negative n this is floor(scale * n). Used by the
// evaluator to report the integer resemblance score.
func (n Number) ScaledFloor(scale int64) int64 {
	scaled := new(big.Rat).Mul(n.rat(), new(big.Rat).SetInt64(scale))
	num, den := scaled.Num(), scaled.Denom()
	q := new(big.Int).Quo(num, den)
	return q.Int64()
}

// Float64 returns the nearest float64 approximation, for diagnostics and
// debug logging only; no validation or scoring decision may depend on it.
func (n Number) Float64() float64 {
	f, _ := n.rat().Float64()
	return f
}

// String renders the canonical decimal or fractional form, matching the
// original judge's "num/den" fallback for non-integral values. This is
// also the format the problem/solution text format expects for a single
// coordinate component: plain integers print without a denominator, e.g.
// "3" or "1/2".
func (n Number) String() string {
	if n.rat().IsInt() {
		return n.rat().Num().String()
	}
	return n.rat().RatString()
}

package edwards

import (
	"math/big"

	"github.com/dusk-network/corretto/pkg/field"
)

// Point is a curve point in extended coordinates. Points are immutable
// values; they are produced by DecodeFromX or by the arithmetic on a
// Curve and always satisfy Z != 0 and T*Z = X*Y.
type Point struct {
	X, Y, T, Z field.Element
}

// Identity returns the neutral element (0, 1), which in extended
// coordinates is (0:1:0:1).
func (c *Curve) Identity() Point {
	return Point{
		X: c.fp.Zero(),
		Y: c.fp.One(),
		T: c.fp.Zero(),
		Z: c.fp.One(),
	}
}

// DecodeFromX recovers the full point for a given x-coordinate via
// y^2 = (-x^2 - 1) / (d*x^2 - 1), picking the non-negative root of the
// two candidates (the least absolute residue, the Decaf sign
// convention). It fails with ErrInvalidXCoordinate when the denominator
// vanishes and with ErrNotOnCurve when y^2 is a non-residue.
func (c *Curve) DecodeFromX(x field.Element) (Point, error) {
	x2 := c.fp.Square(x)
	den := c.fp.Sub(c.fp.Mul(c.d, x2), c.fp.One())
	if den.IsZero() {
		return Point{}, ErrInvalidXCoordinate
	}
	num := c.fp.Sub(c.fp.Neg(x2), c.fp.One())
	denInv, err := c.fp.Inv(den)
	if err != nil {
		return Point{}, err
	}
	y2 := c.fp.Mul(num, denInv)

	y, _, err := c.fp.Sqrt(y2)
	if err != nil {
		return Point{}, ErrNotOnCurve
	}
	return Point{
		X: x,
		Y: y,
		T: c.fp.Mul(x, y),
		Z: c.fp.One(),
	}, nil
}

// Add returns p + q. The unified addition law is complete for the curve
// shapes handled here (a square, d non-square), so there are no failure
// cases for well-formed points.
func (c *Curve) Add(p, q Point) Point {
	fp := c.fp

	// A = X1*Y2 + Y1*X2
	sum := fp.Add(fp.Mul(p.X, q.Y), fp.Mul(p.Y, q.X))
	// B = Y1*Y2 - a*X1*X2
	prod := fp.Sub(fp.Mul(p.Y, q.Y), fp.Mul(c.a, fp.Mul(p.X, q.X)))
	z1z2 := fp.Mul(p.Z, q.Z)
	dt1t2 := fp.Mul(c.d, fp.Mul(p.T, q.T))
	// F = Z1*Z2 - d*T1*T2, G = Z1*Z2 + d*T1*T2
	f := fp.Sub(z1z2, dt1t2)
	g := fp.Add(z1z2, dt1t2)

	return Point{
		X: fp.Mul(sum, f),
		Y: fp.Mul(prod, g),
		T: fp.Mul(prod, sum),
		Z: fp.Mul(f, g),
	}
}

// Double returns 2p using the dedicated doubling formulas, which cost
// less than the generic addition and must be used whenever both
// operands coincide.
func (c *Curve) Double(p Point) Point {
	fp := c.fp

	xy2 := fp.Double(fp.Mul(p.X, p.Y))
	y2 := fp.Square(p.Y)
	ax2 := fp.Mul(c.a, fp.Square(p.X))
	z2dbl := fp.Double(fp.Square(p.Z))

	// F = 2*Z1^2 - Y1^2 - a*X1^2, G = Y1^2 + a*X1^2, H = Y1^2 - a*X1^2
	f := fp.Sub(fp.Sub(z2dbl, y2), ax2)
	g := fp.Add(y2, ax2)
	h := fp.Sub(y2, ax2)

	return Point{
		X: fp.Mul(xy2, f),
		Y: fp.Mul(g, h),
		T: fp.Mul(xy2, h),
		Z: fp.Mul(g, f),
	}
}

// Neg returns -p, the point (-x, y).
func (c *Curve) Neg(p Point) Point {
	return Point{
		X: c.fp.Neg(p.X),
		Y: p.Y,
		T: c.fp.Neg(p.T),
		Z: p.Z,
	}
}

// Equal reports whether p and q denote the same affine point. The
// comparison cross-multiplies by the Z coordinates since the extended
// representation is only unique up to a nonzero scale.
func (c *Curve) Equal(p, q Point) bool {
	return c.fp.Mul(p.X, q.Z).Equal(c.fp.Mul(q.X, p.Z)) &&
		c.fp.Mul(p.Y, q.Z).Equal(c.fp.Mul(q.Y, p.Z))
}

// IsIdentity reports whether p is the neutral element.
func (c *Curve) IsIdentity(p Point) bool {
	return p.X.IsZero() && p.Y.Equal(p.Z)
}

// Affine normalizes p to its affine coordinates (X/Z, Y/Z).
func (c *Curve) Affine(p Point) (x, y field.Element) {
	zInv, err := c.fp.Inv(p.Z)
	if err != nil {
		// Z != 0 is a Point invariant; only hand-built coordinates can
		// trip this.
		panic("edwards: point with zero Z coordinate")
	}
	return c.fp.Mul(p.X, zInv), c.fp.Mul(p.Y, zInv)
}

// scalarMultBits is the minimum number of ladder iterations performed
// by ScalarMult, so that the work done does not depend on the value of
// scalars up to this width.
const scalarMultBits = 256

// ScalarMult returns k*p for a non-negative scalar k, by a fixed-width
// most-significant-bit-first double-and-add ladder: every iteration
// doubles and computes the addition, keeping it only when the scalar
// bit is set. The iteration count is fixed at 256 (or the scalar's bit
// length for oversized scalars) regardless of the scalar's value.
// ScalarMult(p, 0) is the identity for every p. Negative scalars are a
// programmer error and panic.
func (c *Curve) ScalarMult(p Point, k *big.Int) Point {
	if k.Sign() < 0 {
		panic("edwards: negative scalar")
	}
	bits := k.BitLen()
	if bits < scalarMultBits {
		bits = scalarMultBits
	}

	acc := c.Identity()
	for i := bits - 1; i >= 0; i-- {
		acc = c.Double(acc)
		sum := c.Add(acc, p)
		if k.Bit(i) == 1 {
			acc = sum
		}
	}
	return acc
}

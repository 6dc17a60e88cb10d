// Package edwards implements twisted Edwards curve arithmetic
// a*x^2 + y^2 = 1 + d*x^2*y^2 in extended coordinates (X:Y:T:Z), which
// represent the affine point (X/Z, Y/Z) with T = X*Y/Z. Extended
// coordinates keep point addition and doubling free of field
// inversions.
//
// A Curve is an immutable context bundling the field and the curve
// coefficients; all point operations are methods on it. Points are
// value objects, so curves and points may be shared between goroutines
// freely.
package edwards

import (
	"fmt"

	"github.com/dusk-network/corretto/pkg/field"
)

// Curve holds the parameters of a twisted Edwards curve. It is
// read-only after NewCurve returns.
type Curve struct {
	fp   *field.Field
	a    field.Element
	d    field.Element
	base Point
}

// NewCurve creates a curve context from a field and the coefficients a
// and d, with the given base point abscissa. The base point is decoded
// from baseX with the canonical (non-negative) root, which also
// verifies it lies on the curve.
func NewCurve(fp *field.Field, a, d field.Element, baseX field.Element) (*Curve, error) {
	c := &Curve{fp: fp, a: a, d: d}
	base, err := c.DecodeFromX(baseX)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurve, err)
	}
	c.base = base
	return c, nil
}

// Field returns the underlying field context.
func (c *Curve) Field() *field.Field {
	return c.fp
}

// A returns the curve coefficient a.
func (c *Curve) A() field.Element {
	return c.a
}

// D returns the curve coefficient d.
func (c *Curve) D() field.Element {
	return c.d
}

// Base returns the curve base point.
func (c *Curve) Base() Point {
	return c.base
}

// IsOnCurve reports whether the affine point (x, y) satisfies
// a*x^2 + y^2 = 1 + d*x^2*y^2.
func (c *Curve) IsOnCurve(x, y field.Element) bool {
	x2 := c.fp.Square(x)
	y2 := c.fp.Square(y)
	lhs := c.fp.Add(c.fp.Mul(c.a, x2), y2)
	rhs := c.fp.Add(c.fp.One(), c.fp.Mul(c.d, c.fp.Mul(x2, y2)))
	return lhs.Equal(rhs)
}

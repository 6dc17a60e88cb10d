package edwards_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-network/corretto/pkg/edwards"
	"github.com/dusk-network/corretto/pkg/field"
	"github.com/dusk-network/corretto/pkg/sonny"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return v
}

// smallCurve builds a toy curve over GF(13) with a = -1, d = 3 and base
// abscissa 1. Unreachable decode failures on the production curve (the
// zero denominator needs 1/d to be a residue, which it is not there)
// are exercised here.
func smallCurve(t *testing.T) *edwards.Curve {
	t.Helper()
	fp, err := field.New(big.NewInt(13))
	require.NoError(t, err)
	c, err := edwards.NewCurve(
		fp,
		fp.NewElement(big.NewInt(-1)),
		fp.NewElementFromUint64(3),
		fp.NewElementFromUint64(1),
	)
	require.NoError(t, err)
	return c
}

func TestNewCurve(t *testing.T) {
	t.Run("rejects base abscissa off the curve", func(t *testing.T) {
		fp, err := field.New(big.NewInt(13))
		require.NoError(t, err)
		_, err = edwards.NewCurve(
			fp,
			fp.NewElement(big.NewInt(-1)),
			fp.NewElementFromUint64(3),
			fp.NewElementFromUint64(4), // y^2 is a non-residue for x=4
		)
		assert.ErrorIs(t, err, edwards.ErrInvalidCurve)
	})

	t.Run("base point satisfies the curve equation", func(t *testing.T) {
		c := smallCurve(t)
		x, y := c.Affine(c.Base())
		assert.True(t, c.IsOnCurve(x, y))
	})
}

func TestDecodeFromX(t *testing.T) {
	c := sonny.Params()
	fp := c.Field()

	t.Run("x=14 worked example", func(t *testing.T) {
		p, err := c.DecodeFromX(fp.NewElementFromUint64(14))
		require.NoError(t, err)

		assert.Equal(t, big.NewInt(14), p.X.BigInt())
		assert.Equal(t,
			mustBig(t, "209320140320440078856110758841281411362780900395675344846360946607335974114"),
			p.Y.BigInt())
		assert.Equal(t,
			mustBig(t, "2930481964486161103985550623777939759078932605539454827849053252502703637596"),
			p.T.BigInt())
		assert.True(t, p.Z.IsOne())

		x, y := c.Affine(p)
		assert.True(t, c.IsOnCurve(x, y))
	})

	t.Run("decoded y is the non-negative root", func(t *testing.T) {
		p, err := c.DecodeFromX(fp.NewElementFromUint64(14))
		require.NoError(t, err)
		assert.True(t, fp.IsPositive(p.Y))
	})

	t.Run("x=2 is not on the curve", func(t *testing.T) {
		_, err := c.DecodeFromX(fp.NewElementFromUint64(2))
		assert.ErrorIs(t, err, edwards.ErrNotOnCurve)
	})

	t.Run("zero denominator", func(t *testing.T) {
		sc := smallCurve(t)
		// 3 * 10^2 = 300 = 1 (mod 13), so d*x^2 - 1 vanishes.
		_, err := sc.DecodeFromX(sc.Field().NewElementFromUint64(10))
		assert.ErrorIs(t, err, edwards.ErrInvalidXCoordinate)
	})
}

func TestAdd(t *testing.T) {
	c := sonny.Params()
	fp := c.Field()

	p, err := c.DecodeFromX(fp.NewElementFromUint64(14))
	require.NoError(t, err)
	q, err := c.DecodeFromX(fp.NewElementFromUint64(67))
	require.NoError(t, err)

	require.Equal(t,
		mustBig(t, "3295852391766231710775359255962084372654764936733420286493628916624458118402"),
		q.Y.BigInt())

	t.Run("worked example coordinates", func(t *testing.T) {
		r := c.Add(p, q)
		assert.Equal(t,
			mustBig(t, "6071577539228590191219387911031602982956051495655581694654126271979753651722"),
			r.X.BigInt())
		assert.Equal(t,
			mustBig(t, "837202702872841412924343780706778248153230580612427863707303374823451692769"),
			r.Y.BigInt())
		assert.Equal(t,
			mustBig(t, "3870569102798123767101920828945730089305537575358572428982223506408632563886"),
			r.T.BigInt())
		assert.Equal(t,
			mustBig(t, "5030678076965133398451320860257582818948884882165145613987735041289292101393"),
			r.Z.BigInt())
	})

	t.Run("result invariants", func(t *testing.T) {
		r := c.Add(p, q)
		assert.False(t, r.Z.IsZero())
		assert.True(t, fp.Mul(r.T, r.Z).Equal(fp.Mul(r.X, r.Y)))
		x, y := c.Affine(r)
		assert.True(t, c.IsOnCurve(x, y))
	})

	t.Run("commutative", func(t *testing.T) {
		assert.True(t, c.Equal(c.Add(p, q), c.Add(q, p)))
	})

	t.Run("identity is neutral", func(t *testing.T) {
		assert.True(t, c.Equal(c.Add(p, c.Identity()), p))
		assert.True(t, c.Equal(c.Add(c.Identity(), p), p))
	})

	t.Run("adding the negation yields the identity", func(t *testing.T) {
		assert.True(t, c.IsIdentity(c.Add(p, c.Neg(p))))
	})

	t.Run("associative", func(t *testing.T) {
		b := c.Double(q)
		assert.True(t, c.Equal(
			c.Add(c.Add(p, q), b),
			c.Add(p, c.Add(q, b)),
		))
	})
}

func TestDouble(t *testing.T) {
	c := sonny.Params()
	fp := c.Field()

	p, err := c.DecodeFromX(fp.NewElementFromUint64(14))
	require.NoError(t, err)

	t.Run("worked example coordinate", func(t *testing.T) {
		d := c.Double(p)
		assert.Equal(t,
			mustBig(t, "149787030802898863214220589614787467360377956858885734134859441157998105502"),
			d.X.BigInt())
	})

	t.Run("double equals generic self-addition", func(t *testing.T) {
		assert.True(t, c.Equal(c.Double(p), c.Add(p, p)))
	})

	t.Run("double of identity", func(t *testing.T) {
		assert.True(t, c.IsIdentity(c.Double(c.Identity())))
	})

	t.Run("result stays on curve", func(t *testing.T) {
		x, y := c.Affine(c.Double(p))
		assert.True(t, c.IsOnCurve(x, y))
	})
}

func TestEqual(t *testing.T) {
	c := sonny.Params()
	fp := c.Field()

	p, err := c.DecodeFromX(fp.NewElementFromUint64(14))
	require.NoError(t, err)

	t.Run("scale-invariant", func(t *testing.T) {
		// The same affine point under a different projective scale.
		k := fp.NewElementFromUint64(5)
		scaled := edwards.Point{
			X: fp.Mul(p.X, k),
			Y: fp.Mul(p.Y, k),
			T: fp.Mul(p.T, k),
			Z: fp.Mul(p.Z, k),
		}
		assert.True(t, c.Equal(p, scaled))
	})

	t.Run("distinct points differ", func(t *testing.T) {
		q, err := c.DecodeFromX(fp.NewElementFromUint64(67))
		require.NoError(t, err)
		assert.False(t, c.Equal(p, q))
	})
}

package sonny

import (
	"math/big"

	"filippo.io/edwards25519"

	"github.com/dusk-network/corretto/pkg/field"
)

// FieldElement is an element of GF(l) in a fixed-width representation
// backed by filippo.io/edwards25519 scalar arithmetic, which reduces
// modulo exactly l. Unlike the arbitrary-precision elements of
// pkg/field, the core operations (Add, Subtract, Multiply, Negate,
// Invert) run in constant time, which makes this the type of choice for
// secret operands.
//
// The zero value is the zero element. Values are immutable; every
// operation returns a new element.
type FieldElement struct {
	s edwards25519.Scalar
}

var (
	feOne          FieldElement
	feSqrtMinusOne FieldElement
)

// initScalarConstants runs inside initParams, after modulus is set.
func initScalarConstants() {
	feOne = mustFromBigInt(big.NewInt(1))
	m1, _ := new(big.Int).SetString(sqrtMinusOne, 10)
	feSqrtMinusOne = mustFromBigInt(m1)
}

// feFromBig reduces x into the field. It must not be called before
// initParams has set the modulus.
func feFromBig(x *big.Int) (FieldElement, error) {
	v := new(big.Int).Mod(x, modulus)
	return FromBytes(littleEndian(v))
}

func mustFromBigInt(x *big.Int) FieldElement {
	v, err := feFromBig(x)
	if err != nil {
		panic("sonny: bad field constant: " + err.Error())
	}
	return v
}

// Zero returns the additive identity.
func Zero() FieldElement {
	return FieldElement{}
}

// One returns the multiplicative identity.
func One() FieldElement {
	initOnce.Do(initParams)
	return feOne
}

// FromBigInt reduces an arbitrary integer into the field.
func FromBigInt(x *big.Int) (FieldElement, error) {
	initOnce.Do(initParams)
	return feFromBig(x)
}

// FromBytes decodes a canonical 32-byte little-endian encoding,
// rejecting values >= l with field.ErrNonCanonical.
func FromBytes(b []byte) (FieldElement, error) {
	var out FieldElement
	if _, err := out.s.SetCanonicalBytes(b); err != nil {
		return FieldElement{}, field.ErrNonCanonical
	}
	return out, nil
}

// FromUint64 converts a small integer into the field.
func FromUint64(x uint64) FieldElement {
	v, _ := FromBigInt(new(big.Int).SetUint64(x))
	return v
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v FieldElement) Bytes() []byte {
	return v.s.Bytes()
}

// BigInt returns the value of v as a big integer in [0, l).
func (v FieldElement) BigInt() *big.Int {
	le := v.s.Bytes()
	be := make([]byte, len(le))
	for i := range le {
		be[len(le)-1-i] = le[i]
	}
	return new(big.Int).SetBytes(be)
}

// Add returns v + w.
func (v FieldElement) Add(w FieldElement) FieldElement {
	var out FieldElement
	out.s.Add(&v.s, &w.s)
	return out
}

// Subtract returns v - w.
func (v FieldElement) Subtract(w FieldElement) FieldElement {
	var out FieldElement
	out.s.Subtract(&v.s, &w.s)
	return out
}

// Multiply returns v * w.
func (v FieldElement) Multiply(w FieldElement) FieldElement {
	var out FieldElement
	out.s.Multiply(&v.s, &w.s)
	return out
}

// Square returns v * v.
func (v FieldElement) Square() FieldElement {
	return v.Multiply(v)
}

// Negate returns -v.
func (v FieldElement) Negate() FieldElement {
	var out FieldElement
	out.s.Negate(&v.s)
	return out
}

// Invert returns v^-1, failing with field.ErrDivisionByZero on the zero
// element.
func (v FieldElement) Invert() (FieldElement, error) {
	if v.IsZero() {
		return FieldElement{}, field.ErrDivisionByZero
	}
	var out FieldElement
	out.s.Invert(&v.s)
	return out, nil
}

// Equal reports whether v and w are the same element.
func (v FieldElement) Equal(w FieldElement) bool {
	return v.s.Equal(&w.s) == 1
}

// IsZero reports whether v is the additive identity.
func (v FieldElement) IsZero() bool {
	return v.Equal(FieldElement{})
}

// IsPositive reports whether v is non-negative in the Decaf sense, i.e.
// its least absolute residue lies in [0, (l-1)/2].
func (v FieldElement) IsPositive() bool {
	initOnce.Do(initParams)
	return v.BigInt().Cmp(halfModulus) <= 0
}

// Pow returns v^e for a non-negative exponent by a fixed-width
// square-and-multiply ladder over at least 256 bits. Exponents used
// inside this package (Legendre, square roots) are public field
// constants.
func (v FieldElement) Pow(e *big.Int) FieldElement {
	if e.Sign() < 0 {
		panic("sonny: negative exponent")
	}
	initOnce.Do(initParams)
	bits := e.BitLen()
	if bits < 256 {
		bits = 256
	}
	acc := feOne
	for i := bits - 1; i >= 0; i-- {
		acc = acc.Square()
		prod := acc.Multiply(v)
		if e.Bit(i) == 1 {
			acc = prod
		}
	}
	return acc
}

// Legendre computes the Legendre symbol v^((l-1)/2): 1 for a nonzero
// square, -1 for a non-square, 0 for zero.
func (v FieldElement) Legendre() int {
	initOnce.Do(initParams)
	if v.IsZero() {
		return 0
	}
	r := v.Pow(legendreExp)
	if r.Equal(feOne) {
		return 1
	}
	return -1
}

// Sqrt returns the non-negative square root of v, failing with
// field.ErrNotSquare for non-residues. Since l = 5 (mod 8) the root is
// found directly from the candidate v^((l+3)/8), corrected by sqrt(-1)
// when needed; no Tonelli-Shanks loop is required for this field.
func (v FieldElement) Sqrt() (FieldElement, error) {
	initOnce.Do(initParams)
	if v.IsZero() {
		return FieldElement{}, nil
	}
	r := v.Pow(sqrtExp)
	if !r.Square().Equal(v) {
		r = r.Multiply(feSqrtMinusOne)
		if !r.Square().Equal(v) {
			return FieldElement{}, field.ErrNotSquare
		}
	}
	if !r.IsPositive() {
		r = r.Negate()
	}
	return r, nil
}

func (v FieldElement) String() string {
	return v.BigInt().String()
}

// littleEndian encodes a reduced value as 32 little-endian bytes.
func littleEndian(v *big.Int) []byte {
	be := v.FillBytes(make([]byte, 32))
	for i, j := 0, len(be)-1; i < j; i, j = i+1, j-1 {
		be[i], be[j] = be[j], be[i]
	}
	return be
}

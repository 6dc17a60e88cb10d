// Package field implements arithmetic over a prime field GF(p).
//
// A Field is an immutable context created once for a given odd prime
// modulus; every Element produced through it is a normalized residue in
// [0, p). Elements are value objects: no operation mutates its operands,
// so a Field and its Elements are safe for concurrent use without
// locking.
package field

import (
	"fmt"
	"math/big"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// Field holds the modulus and derived constants for a prime field.
// It is read-only after New returns.
type Field struct {
	p        *big.Int // the modulus
	pMinus2  *big.Int // exponent for Fermat inversion
	halfP    *big.Int // (p-1)/2, the Legendre exponent and positivity bound
	byteSize int      // ceil(bits(p)/8), length of canonical encodings
}

// New creates a field context for the given modulus. The modulus must be
// an odd prime; primality itself is the caller's responsibility, but
// even or too-small moduli are rejected outright.
func New(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(big.NewInt(3)) < 0 || p.Bit(0) == 0 {
		return nil, ErrInvalidModulus
	}
	mod := new(big.Int).Set(p)
	return &Field{
		p:        mod,
		pMinus2:  new(big.Int).Sub(mod, bigTwo),
		halfP:    new(big.Int).Rsh(new(big.Int).Sub(mod, bigOne), 1),
		byteSize: (mod.BitLen() + 7) / 8,
	}, nil
}

// Modulus returns a copy of the field modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// Size returns the length in bytes of a canonical element encoding.
func (f *Field) Size() int {
	return f.byteSize
}

// Element is a residue in [0, p). The zero value is not usable; Elements
// are created through a Field.
type Element struct {
	v *big.Int
}

func (f *Field) elem(v *big.Int) Element {
	return Element{v: v.Mod(v, f.p)}
}

// NewElement reduces an arbitrary integer into the field.
func (f *Field) NewElement(x *big.Int) Element {
	return f.elem(new(big.Int).Set(x))
}

// NewElementFromUint64 reduces a uint64 into the field.
func (f *Field) NewElementFromUint64(x uint64) Element {
	return f.elem(new(big.Int).SetUint64(x))
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return Element{v: new(big.Int)}
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return f.elem(big.NewInt(1))
}

// Add returns a + b.
func (f *Field) Add(a, b Element) Element {
	return f.elem(new(big.Int).Add(a.v, b.v))
}

// Sub returns a - b.
func (f *Field) Sub(a, b Element) Element {
	return f.elem(new(big.Int).Sub(a.v, b.v))
}

// Mul returns a * b.
func (f *Field) Mul(a, b Element) Element {
	return f.elem(new(big.Int).Mul(a.v, b.v))
}

// Square returns a * a.
func (f *Field) Square(a Element) Element {
	return f.elem(new(big.Int).Mul(a.v, a.v))
}

// Neg returns -a.
func (f *Field) Neg(a Element) Element {
	return f.elem(new(big.Int).Neg(a.v))
}

// Double returns 2a.
func (f *Field) Double(a Element) Element {
	return f.elem(new(big.Int).Lsh(a.v, 1))
}

// Exp returns a^e by square-and-multiply. A negative exponent is treated
// as inversion followed by exponentiation with |e|, so Exp(a, -1) is the
// modular inverse of a; like Inv it fails on a zero base.
func (f *Field) Exp(a Element, e *big.Int) (Element, error) {
	base := a
	exp := e
	if e.Sign() < 0 {
		inv, err := f.Inv(a)
		if err != nil {
			return Element{}, err
		}
		base = inv
		exp = new(big.Int).Neg(e)
	}
	return f.elem(new(big.Int).Exp(base.v, exp, f.p)), nil
}

// pow is Exp restricted to non-negative exponents, for internal use.
func (f *Field) pow(a Element, e *big.Int) Element {
	return f.elem(new(big.Int).Exp(a.v, e, f.p))
}

// Inv returns a^-1 via Fermat's little theorem (a^(p-2) mod p).
func (f *Field) Inv(a Element) (Element, error) {
	if a.IsZero() {
		return Element{}, ErrDivisionByZero
	}
	return f.pow(a, f.pMinus2), nil
}

// Div returns a / b, failing with ErrDivisionByZero when b is zero.
func (f *Field) Div(a, b Element) (Element, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return Element{}, err
	}
	return f.Mul(a, inv), nil
}

// IsPositive reports whether a is "non-negative" in the Decaf sense: its
// least absolute residue lies in [0, (p-1)/2]. Of the two square roots of
// any residue exactly one is non-negative; that one is used as the
// canonical root throughout this module.
func (f *Field) IsPositive(a Element) bool {
	return a.v.Cmp(f.halfP) <= 0
}

// Bytes returns the canonical fixed-length little-endian encoding of a.
func (f *Field) Bytes(a Element) []byte {
	be := a.v.FillBytes(make([]byte, f.byteSize))
	for i, j := 0, len(be)-1; i < j; i, j = i+1, j-1 {
		be[i], be[j] = be[j], be[i]
	}
	return be
}

// SetBytes decodes a canonical little-endian encoding produced by Bytes.
// Encodings of the wrong length, or denoting a value >= p, are rejected
// with ErrNonCanonical.
func (f *Field) SetBytes(b []byte) (Element, error) {
	if len(b) != f.byteSize {
		return Element{}, fmt.Errorf("%w: got %d bytes, want %d", ErrNonCanonical, len(b), f.byteSize)
	}
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(f.p) >= 0 {
		return Element{}, ErrNonCanonical
	}
	return Element{v: v}, nil
}

// BigInt returns a copy of the element's value.
func (e Element) BigInt() *big.Int {
	return new(big.Int).Set(e.v)
}

// Equal reports whether two elements are the same residue.
func (e Element) Equal(o Element) bool {
	return e.v.Cmp(o.v) == 0
}

// IsZero reports whether the element is the additive identity.
func (e Element) IsZero() bool {
	return e.v.Sign() == 0
}

// IsOne reports whether the element is the multiplicative identity.
func (e Element) IsOne() bool {
	return e.v.Cmp(bigOne) == 0
}

func (e Element) String() string {
	return e.v.String()
}

package field

import "math/big"

// Legendre computes the Legendre symbol a^((p-1)/2) mod p.
// It returns 1 for a nonzero quadratic residue, -1 for a non-residue
// and 0 when a is zero.
func (f *Field) Legendre(a Element) int {
	if a.IsZero() {
		return 0
	}
	r := f.pow(a, f.halfP)
	if r.IsOne() {
		return 1
	}
	return -1
}

// IsQuadraticResidue reports whether a is a square in the field.
// Zero counts as a residue (its root is zero).
func (f *Field) IsQuadraticResidue(a Element) bool {
	return f.Legendre(a) != -1
}

// Sqrt computes the two square roots of a, returned as the pair
// (r, p-r) with r the non-negative root (see IsPositive). A zero input
// yields the pair (0, 0). Non-residues fail with ErrNotSquare.
//
// The general case runs Tonelli-Shanks; fields with p = 3 (mod 4)
// are served by the direct a^((p+1)/4) exponentiation instead.
func (f *Field) Sqrt(a Element) (Element, Element, error) {
	if a.IsZero() {
		return f.Zero(), f.Zero(), nil
	}
	if f.Legendre(a) != 1 {
		return Element{}, Element{}, ErrNotSquare
	}

	// Factor p-1 = q * 2^s with q odd.
	q := new(big.Int).Sub(f.p, bigOne)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	var r Element
	if s == 1 {
		// p = 3 (mod 4): r = a^((p+1)/4).
		e := new(big.Int).Add(f.p, bigOne)
		e.Rsh(e, 2)
		r = f.pow(a, e)
	} else {
		r = f.tonelliShanks(a, q, s)
	}

	// Order the pair so the non-negative root comes first.
	neg := f.Neg(r)
	if f.IsPositive(r) {
		return r, neg, nil
	}
	return neg, r, nil
}

// tonelliShanks finds one square root of the residue a, given the
// factorization p-1 = q * 2^s. See Shanks, "Five Number-Theoretic
// Algorithms" (1973).
func (f *Field) tonelliShanks(a Element, q *big.Int, s int) Element {
	// Any quadratic non-residue works as z; linear search from 2 finds
	// one quickly since half of all elements qualify.
	z := f.NewElementFromUint64(2)
	for f.Legendre(z) != -1 {
		z = f.Add(z, f.One())
	}

	m := s
	c := f.pow(z, q)
	t := f.pow(a, q)
	// r = a^((q+1)/2)
	qPlus1Half := new(big.Int).Add(q, bigOne)
	qPlus1Half.Rsh(qPlus1Half, 1)
	r := f.pow(a, qPlus1Half)

	// Each pass strictly decreases m, so the loop runs at most s times.
	for !t.IsOne() {
		i := 0
		t2i := t
		for !t2i.IsOne() {
			t2i = f.Square(t2i)
			i++
		}

		// b = c^(2^(m-i-1))
		b := c
		for j := 0; j < m-i-1; j++ {
			b = f.Square(b)
		}
		r = f.Mul(r, b)
		b2 := f.Square(b)
		t = f.Mul(t, b2)
		c = b2
		m = i
	}
	return r
}

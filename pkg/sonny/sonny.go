// Package sonny pins the curve constants of the Sonny twisted Edwards
// curve -x^2 + y^2 = 1 + d*x^2*y^2, defined over the 252-bit prime
// field GF(l) where l = 2^252 + 27742317777372353535851937790883648493
// is the ed25519 group order. The constants come from the offline curve
// derivation; this package only consumes them.
//
// Besides the generic curve context it provides FieldElement, a
// fixed-width field type backed by filippo.io/edwards25519 scalar
// arithmetic, whose modulus is exactly l.
package sonny

import (
	"math/big"
	"sync"

	"github.com/dusk-network/corretto/pkg/edwards"
	"github.com/dusk-network/corretto/pkg/field"
)

const (
	// fieldOrder is l = 2^252 + 27742317777372353535851937790883648493.
	fieldOrder = "7237005577332262213973186563042994240857116359379907606001950938285454250989"

	// curveD satisfies -x^2 + y^2 = 1 + curveD * x^2 * y^2.
	curveD = "951605751702391019481481818669129158712512026257330939079110344917983315091"

	// baseX is the abscissa of the generator fixed by the derivation;
	// the full point is recovered with the non-negative y root.
	baseX = 14

	// sqrtMinusOne is the non-negative square root of -1 (mod l),
	// 2^((l-1)/4) since 2 is a non-residue of this field.
	sqrtMinusOne = "3034649101460298094273452163494570791663566989388331537498831373842135895065"
)

var (
	initOnce sync.Once
	curve    *edwards.Curve

	// Derived exponents and bounds, all public values.
	modulus     *big.Int // l
	halfModulus *big.Int // (l-1)/2
	legendreExp *big.Int // (l-1)/2
	sqrtExp     *big.Int // (l+3)/8, valid since l = 5 (mod 8)
)

func initParams() {
	modulus, _ = new(big.Int).SetString(fieldOrder, 10)
	halfModulus = new(big.Int).Rsh(new(big.Int).Sub(modulus, big.NewInt(1)), 1)
	legendreExp = halfModulus
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(modulus, big.NewInt(3)), 3)

	fp, err := field.New(modulus)
	if err != nil {
		panic("sonny: invalid field order: " + err.Error())
	}
	d, _ := new(big.Int).SetString(curveD, 10)
	curve, err = edwards.NewCurve(
		fp,
		fp.NewElement(big.NewInt(-1)),
		fp.NewElement(d),
		fp.NewElementFromUint64(baseX),
	)
	if err != nil {
		panic("sonny: invalid curve constants: " + err.Error())
	}

	initScalarConstants()
}

// Params returns the process-wide Sonny curve context. The context is
// built once and never mutated afterwards, so the returned pointer may
// be shared freely.
func Params() *edwards.Curve {
	initOnce.Do(initParams)
	return curve
}

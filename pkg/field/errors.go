package field

import "errors"

// Common errors returned by the field package.
var (
	ErrDivisionByZero = errors.New("field: inverse of zero element")
	ErrNotSquare      = errors.New("field: element is not a quadratic residue")
	ErrInvalidModulus = errors.New("field: modulus must be an odd prime >= 3")
	ErrNonCanonical   = errors.New("field: encoding is not a canonical field element")
)

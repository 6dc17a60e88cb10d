package edwards

import "errors"

// Common errors returned by the edwards package.
var (
	ErrInvalidXCoordinate = errors.New("edwards: d*x^2 - 1 is zero, no y-coordinate exists")
	ErrNotOnCurve         = errors.New("edwards: x-coordinate is not on the curve")
	ErrInvalidCurve       = errors.New("edwards: base point does not satisfy the curve equation")
)

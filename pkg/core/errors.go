package core

import "errors"

// ErrDivideByZero is returned when a vector, point or color is divided by a zero scalar
var ErrDivideByZero = errors.New("division by zero")

// inverse returns 1/scalar, guarding every vector-like Divide the same way
func inverse(scalar float64) (float64, error) {
	if scalar == 0 {
		return 0, ErrDivideByZero
	}
	return 1.0 / scalar, nil
}

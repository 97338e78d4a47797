package utils

import (
	"errors"
	"math"
)

// ErrRootNotFound is returned when the Newton iteration fails to converge
// or leaves the real line
var ErrRootNotFound = errors.New("root not found")

const (
	rootTol     = 1.e-11
	rootMaxIter = 100
	derivEps    = 1.e-7
)

// Newton solves f(x) = 0 starting from x0, using a central difference
// approximation to f'. The returned root is branch-dependent: the caller
// owns the choice of seed and with it the choice of root.
func Newton(f func(x float64) (y float64), x0 float64) (x float64, err error) {
	x = x0
	for i := 0; i < rootMaxIter; i++ {
		res := f(x)
		if math.Abs(res) < rootTol {
			return
		}
		deriv := (f(x+derivEps) - f(x-derivEps)) / (2. * derivEps)
		if deriv == 0 || math.IsNaN(deriv) || math.IsInf(deriv, 0) {
			err = ErrRootNotFound
			return
		}
		x -= res / deriv
		if math.IsNaN(x) || math.IsInf(x, 0) {
			err = ErrRootNotFound
			return
		}
	}
	err = ErrRootNotFound
	return
}

package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewton(t *testing.T) {
	{ // Simple transcendental root
		x, err := Newton(math.Cos, 1.2)
		assert.NoError(t, err)
		assert.InDelta(t, 0.5*math.Pi, x, 1.e-10)
	}
	{ // Seed selects the branch
		f := func(x float64) float64 { return x*x - 4. }
		x, err := Newton(f, 1.)
		assert.NoError(t, err)
		assert.InDelta(t, 2., x, 1.e-10)
		x, err = Newton(f, -1.)
		assert.NoError(t, err)
		assert.InDelta(t, -2., x, 1.e-10)
	}
	{ // No real root
		_, err := Newton(func(x float64) float64 { return x*x + 1. }, 3.)
		assert.Equal(t, ErrRootNotFound, err)
	}
}

func TestArgMinAbs(t *testing.T) {
	v := []float64{3., 1., 4., 1.5, 5.}
	assert.Equal(t, 3, ArgMinAbs(v, 1.6))
	assert.Equal(t, 1, ArgMinAbs(v, 0.))
	assert.Equal(t, 4, ArgMinAbs(v, 100.))
}

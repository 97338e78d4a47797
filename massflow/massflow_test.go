package massflow

import (
	"math"
	"testing"

	"github.com/notargets/shockpolar/utils"
	"github.com/stretchr/testify/assert"
)

func TestSigma(t *testing.T) {
	var (
		Gamma = 1.4
	)
	// Sonic throat
	assert.InDelta(t, 1., Sigma(1., Gamma), 1.e-14)
	// Textbook section ratio at M=2
	assert.InDelta(t, 1.6875, Sigma(2., Gamma), 1.e-12)
	// Double valued away from the throat
	assert.Greater(t, Sigma(0.3, Gamma), 1.)
	assert.Greater(t, Sigma(3., Gamma), 1.)
}

func TestMachFromSigma(t *testing.T) {
	var (
		Gamma = 1.4
	)
	for _, mach := range []float64{0.05, 0.2, 0.5, 0.9} {
		m, err := MachSubFromSigma(Sigma(mach, Gamma), Gamma)
		assert.NoError(t, err)
		assert.InDelta(t, mach, m, 1.e-8)
	}
	for _, mach := range []float64{1.1, 1.5, 2.5, 4.} {
		m, err := MachSupFromSigma(Sigma(mach, Gamma), Gamma)
		assert.NoError(t, err)
		assert.InDelta(t, mach, m, 1.e-8)
	}
	// Branch selection: the same section ratio inverts to both roots
	msub, err := MachSubFromSigma(1.6875, Gamma)
	assert.NoError(t, err)
	msup, err := MachSupFromSigma(1.6875, Gamma)
	assert.NoError(t, err)
	assert.Less(t, msub, 1.)
	assert.InDelta(t, 2., msup, 1.e-8)
	// No section is smaller than the throat
	_, err = MachFromSigma(0.5, 2., Gamma)
	assert.Equal(t, utils.ErrRootNotFound, err)
}

func TestWeightMassFlow(t *testing.T) {
	var (
		Gamma = 1.4
		R     = 287.1
	)
	// The reduced mass flow peaks at the sonic condition
	wSonic := WeightMassFlow(1., R, Gamma)
	assert.Greater(t, wSonic, WeightMassFlow(0.8, R, Gamma))
	assert.Greater(t, wSonic, WeightMassFlow(1.2, R, Gamma))
	// Conservation along an isentropic duct: w(M)*Sigma(M) is constant
	w2 := WeightMassFlow(2., R, Gamma) * Sigma(2., Gamma)
	w05 := WeightMassFlow(0.5, R, Gamma) * Sigma(0.5, Gamma)
	assert.InDelta(t, w2, w05, 1.e-12*math.Abs(w2))
}

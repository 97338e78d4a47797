package shockwave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalShockRatios(t *testing.T) {
	var (
		Gamma = 1.4
	)
	{ // Mn=1 is a vanishing shock, all ratios are 1
		assert.InDelta(t, 1., PsRatio(1, Gamma), 1.e-14)
		assert.InDelta(t, 1., RhoRatio(1, Gamma), 1.e-14)
		assert.InDelta(t, 1., TsRatio(1, Gamma), 1.e-14)
		assert.InDelta(t, 1., PiRatio(1, Gamma), 1.e-14)
		assert.InDelta(t, 1., DownstreamMn(1, Gamma), 1.e-14)
	}
	{ // Mn=2 textbook values
		assert.InDelta(t, 4.5, PsRatio(2, Gamma), 1.e-12)
		assert.InDelta(t, 8./3., RhoRatio(2, Gamma), 1.e-12)
		assert.InDelta(t, 0.72087, PiRatio(2, Gamma), 1.e-4)
		assert.InDelta(t, math.Sqrt(1.8/5.4), DownstreamMn(2, Gamma), 1.e-12)
	}
	{ // Strong shock density limit (gamma+1)/(gamma-1)
		assert.InDelta(t, 6., RhoRatio(1.e4, Gamma), 1.e-4)
	}
}

func TestNormalShockInversions(t *testing.T) {
	var (
		Gamma = 1.4
	)
	for _, mn := range []float64{1.1, 1.5, 2., 3.} {
		assert.InDelta(t, mn, MnFromPsRatio(PsRatio(mn, Gamma), Gamma), 1.e-12)
		mni, err := MnFromPiRatio(PiRatio(mn, Gamma), Gamma)
		assert.NoError(t, err)
		assert.InDelta(t, mn, mni, 1.e-8)
	}
}

func TestObliqueDeflection(t *testing.T) {
	var (
		Gamma = 1.4
		M0    = 2.
	)
	// At the Mach angle the shock is a Mach wave with zero deflection
	machAngle := 180. / math.Pi * math.Asin(1./M0)
	assert.InDelta(t, 0., Deflection(M0, machAngle, Gamma), 1.e-12)
	// A normal shock produces no deflection either
	assert.InDelta(t, 0., Deflection(M0, 90., Gamma), 1.e-12)
	// Deflection rises monotonically from the Mach angle to the fold, then
	// falls off toward the normal shock
	sigMax := SigmaDevMax(M0, Gamma)
	prev := 0.
	for sig := machAngle + 0.1; sig < sigMax; sig += 0.5 {
		theta := Deflection(M0, sig, Gamma)
		assert.Greater(t, theta, prev)
		prev = theta
	}
	prev = DevMax(M0, Gamma)
	for sig := sigMax + 0.1; sig <= 90.; sig += 0.5 {
		theta := Deflection(M0, sig, Gamma)
		assert.Less(t, theta, prev)
		prev = theta
	}
}

func TestSigmaFromDeflection(t *testing.T) {
	var (
		Gamma = 1.4
	)
	{ // Reference weak shock solution for M0=2, theta=20 degrees
		sigma, err := SigmaFromDeflection(2., 20., Gamma)
		assert.NoError(t, err)
		assert.InDelta(t, 53.4229401037, sigma, 1.e-8)
		// The weak root lies below the fold of the polar
		assert.Less(t, sigma, SigmaDevMax(2., Gamma))
	}
	{ // Solver returns the weak root across the attached range
		for theta := 1.; theta < DevMax(2., Gamma); theta += 2. {
			sigma, err := SigmaFromDeflection(2., theta, Gamma)
			assert.NoError(t, err)
			assert.Less(t, sigma, SigmaDevMax(2., Gamma)+1.e-6)
			// Round trip
			assert.InDelta(t, theta, Deflection(2., sigma, Gamma), 1.e-8)
		}
	}
	{ // Subsonic upstream flow carries no shock
		_, err := SigmaFromDeflection(0.8, 10., Gamma)
		assert.Equal(t, ErrSubsonic, err)
	}
	{ // Beyond the maximum deflection the shock detaches
		_, err := SigmaFromDeflection(2., 25., Gamma)
		assert.Equal(t, ErrDetached, err)
	}
}

func TestEnvelopes(t *testing.T) {
	var (
		Gamma = 1.4
	)
	// M0=2 reference angles
	assert.InDelta(t, 64.67, SigmaDevMax(2., Gamma), 0.01)
	assert.InDelta(t, 22.97, DevMax(2., Gamma), 0.01)
	// The sonic angle sits just below the maximum deviation angle
	sonic := SigmaSonic(2., Gamma)
	assert.Less(t, sonic, SigmaDevMax(2., Gamma))
	assert.Greater(t, sonic, 60.)
	// Downstream of a shock at the sonic angle the flow is sonic
	sigRad := sonic * math.Pi / 180.
	mn1 := DownstreamMn(2.*math.Sin(sigRad), Gamma)
	theta := DevSonic(2., Gamma)
	m1 := mn1 / math.Sin(sigRad-theta*math.Pi/180.)
	assert.InDelta(t, 1., m1, 1.e-9)
}

func TestDownstreamMachFromPsRatio(t *testing.T) {
	var (
		Gamma = 1.4
		M0    = 2.5
	)
	// Recover a known oblique solution: build the pressure ratio from a
	// given shock angle, then invert
	sigma := 40.
	sigRad := sigma * math.Pi / 180.
	mn0 := M0 * math.Sin(sigRad)
	ps := PsRatio(mn0, Gamma)
	theta := Deflection(M0, sigma, Gamma)
	want := DownstreamMn(mn0, Gamma) / math.Sin(sigRad-theta*math.Pi/180.)
	m1, err := DownstreamMachFromPsRatio(M0, ps, Gamma)
	assert.NoError(t, err)
	assert.InDelta(t, want, m1, 1.e-12)
	// A pressure ratio above the normal shock value has no oblique solution
	_, err = DownstreamMachFromPsRatio(M0, PsRatio(M0, Gamma)*1.1, Gamma)
	assert.Equal(t, ErrDetached, err)
}

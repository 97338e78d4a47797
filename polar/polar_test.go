package polar

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/notargets/shockpolar/isentropic"
	"github.com/notargets/shockpolar/shockwave"
	"github.com/notargets/shockpolar/supersonic"
	"github.com/stretchr/testify/assert"
)

func TestShockPolar(t *testing.T) {
	var (
		Gamma = 1.4
		M0    = 2.
		N     = 201
	)
	c, err := ShockPolar(M0, Gamma, N)
	assert.NoError(t, err)
	assert.Len(t, c.Theta, N)
	// Zero deflection at both ends of the sweep: Mach wave and normal shock
	assert.InDelta(t, 0., c.Theta[0], 1.e-10)
	assert.InDelta(t, 0., c.Theta[N-1], 1.e-10)
	// Pressure ratio grows monotonically with shock angle up to the normal
	// shock value
	for i := 1; i < N; i++ {
		assert.Greater(t, c.PsRatio[i], c.PsRatio[i-1])
	}
	assert.InDelta(t, shockwave.PsRatio(M0, Gamma), c.PsRatio[N-1], 1.e-12)
	// The sampled maximum deflection approaches the analytic one
	thetaPeak := 0.
	for _, th := range c.Theta {
		thetaPeak = math.Max(thetaPeak, th)
	}
	assert.InDelta(t, shockwave.DevMax(M0, Gamma), thetaPeak, 0.01)

	_, err = ShockPolar(0.5, Gamma, N)
	assert.Equal(t, shockwave.ErrSubsonic, err)
}

func TestWeakPolar(t *testing.T) {
	var (
		Gamma = 1.4
		M0    = 3.
		N     = 101
	)
	c, err := WeakPolar(M0, Gamma, N)
	assert.NoError(t, err)
	// The weak branch is monotonic in deflection
	for i := 1; i < N; i++ {
		assert.Greater(t, c.Theta[i], c.Theta[i-1])
	}
	assert.InDelta(t, shockwave.DevMax(M0, Gamma), c.Theta[N-1], 1.e-8)
}

func TestIsentropicReference(t *testing.T) {
	var (
		Gamma = 1.4
		M0    = 2.
		N     = 51
	)
	c, err := IsentropicReference(M0, Gamma, N)
	assert.NoError(t, err)
	assert.InDelta(t, 1., c.PsRatio[0], 1.e-10)
	// Lossless compression stays below the weak shock compression at equal
	// deflection, except at zero where they agree
	w, err := WeakPolar(M0, Gamma, N)
	assert.NoError(t, err)
	assert.Less(t, c.PsRatio[N-1], w.PsRatio[N-1])
}

func TestIsentropicReferenceLowMach(t *testing.T) {
	// Below M of about 1.6 the maximum shock deflection exceeds the full
	// Prandtl-Meyer angle, so the reference curve ends at the sonic turn
	// instead of at the polar fold
	var (
		Gamma = 1.4
		M0    = 1.5
		N     = 201
	)
	omega := supersonic.PrandtlMeyer(M0, Gamma)
	assert.Greater(t, shockwave.DevMax(M0, Gamma), omega)
	c, err := IsentropicReference(M0, Gamma, N)
	assert.NoError(t, err)
	assert.InDelta(t, 1., c.PsRatio[0], 1.e-10)
	assert.InDelta(t, omega, c.Theta[N-1], 1.e-12)
	// The last sample compresses all the way down to sonic
	assert.InDelta(t, isentropic.PiPs(M0, Gamma)/isentropic.PiPs(1., Gamma),
		c.PsRatio[N-1], 1.e-6)
}

func TestSampleCount(t *testing.T) {
	var (
		Gamma = 1.4
	)
	_, err := ShockPolar(2., Gamma, 1)
	assert.Equal(t, ErrSamples, err)
	_, err = WeakPolar(2., Gamma, 1)
	assert.Equal(t, ErrSamples, err)
	_, err = IsentropicReference(2., Gamma, 0)
	assert.Equal(t, ErrSamples, err)
	_, _, err = Envelopes(1.1, 10., Gamma, 1)
	assert.Equal(t, ErrSamples, err)
}

func TestEnvelopes(t *testing.T) {
	var (
		Gamma = 1.4
		N     = 25
	)
	devMax, sonic, err := Envelopes(1.1, 10., Gamma, N)
	assert.NoError(t, err)
	for i := 0; i < N; i++ {
		// The sonic locus hugs the max deflection locus from below
		assert.Less(t, sonic.Sigma[i], devMax.Sigma[i])
		assert.Less(t, sonic.Theta[i], devMax.Theta[i])
	}
	_, _, err = Envelopes(0.9, 10., Gamma, N)
	assert.Equal(t, shockwave.ErrSubsonic, err)
}

func TestRender(t *testing.T) {
	var (
		Gamma = 1.4
		dir   = t.TempDir()
	)
	var curves []*Curve
	for _, m := range []float64{1.5, 2., 3.} {
		c, err := ShockPolar(m, Gamma, 101)
		assert.NoError(t, err)
		curves = append(curves, c)
	}
	devMax, sonic, err := Envelopes(1.1, 10., Gamma, 51)
	assert.NoError(t, err)
	curves = append(curves, devMax, sonic)

	pngST := filepath.Join(dir, "sigma_theta.png")
	assert.NoError(t, RenderSigmaTheta(curves, pngST))
	fi, err := os.Stat(pngST)
	assert.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))

	pngPT := filepath.Join(dir, "ps_theta.png")
	assert.NoError(t, RenderPressureTheta(curves, pngPT))
	_, err = os.Stat(pngPT)
	assert.NoError(t, err)
}

func TestPreview(t *testing.T) {
	c, err := ShockPolar(2., 1.4, 61)
	assert.NoError(t, err)
	s := c.Preview(12)
	assert.Contains(t, s, "M=2")
	assert.NotEmpty(t, s)
}

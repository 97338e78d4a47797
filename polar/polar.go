// Package polar samples shock polar curves: shock angle versus flow
// deflection and pressure ratio versus deflection for a set of upstream
// Mach numbers, together with the maximum deflection and sonic envelope
// loci and the isentropic compression reference curves.
package polar

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/shockpolar/shockwave"
	"github.com/notargets/shockpolar/supersonic"
)

// ErrSamples marks a sample count too small to span a curve
var ErrSamples = errors.New("curve sampling needs at least 2 points")

// Curve is one sampled polar: deflection angle Theta in degrees with the
// shock angle Sigma and static pressure ratio PsRatio at each sample
type Curve struct {
	Name    string
	Theta   []float64
	Sigma   []float64
	PsRatio []float64
}

// ShockPolar samples the full shock polar for upstream Mach number m0,
// sweeping the shock angle from the Mach angle to the normal shock. The
// resulting deflection rises to the fold and falls back to zero, tracing
// both the weak and strong branches
func ShockPolar(m0, gamma float64, n int) (c *Curve, err error) {
	if n < 2 {
		err = ErrSamples
		return
	}
	if m0 <= 1. {
		err = shockwave.ErrSubsonic
		return
	}
	var (
		machAngle = 180. / math.Pi * math.Asin(1./m0)
	)
	c = &Curve{
		Name:    fmt.Sprintf("M=%.4g", m0),
		Sigma:   make([]float64, n),
		Theta:   make([]float64, n),
		PsRatio: make([]float64, n),
	}
	floats.Span(c.Sigma, machAngle, 90.)
	for i, sigma := range c.Sigma {
		mn := m0 * math.Sin(sigma*math.Pi/180.)
		c.Theta[i] = shockwave.Deflection(m0, sigma, gamma)
		c.PsRatio[i] = shockwave.PsRatio(mn, gamma)
	}
	return
}

// WeakPolar samples only the weak branch, from zero deflection to the
// maximum deflection angle
func WeakPolar(m0, gamma float64, n int) (c *Curve, err error) {
	if n < 2 {
		err = ErrSamples
		return
	}
	if m0 <= 1. {
		err = shockwave.ErrSubsonic
		return
	}
	var (
		machAngle = 180. / math.Pi * math.Asin(1./m0)
		sigmaMax  = shockwave.SigmaDevMax(m0, gamma)
	)
	c = &Curve{
		Name:    fmt.Sprintf("M=%.4g", m0),
		Sigma:   make([]float64, n),
		Theta:   make([]float64, n),
		PsRatio: make([]float64, n),
	}
	floats.Span(c.Sigma, machAngle, sigmaMax)
	for i, sigma := range c.Sigma {
		mn := m0 * math.Sin(sigma*math.Pi/180.)
		c.Theta[i] = shockwave.Deflection(m0, sigma, gamma)
		c.PsRatio[i] = shockwave.PsRatio(mn, gamma)
	}
	return
}

// IsentropicReference samples the lossless compression curve for the same
// deflection range as the weak shock polar at m0: pressure ratio against
// deflection through a Prandtl-Meyer compression. The compression ends where
// the turned flow reaches sonic, after the full Prandtl-Meyer angle; below
// M of about 1.6 that bound is tighter than the maximum shock deflection,
// so the curve stops short of the polar fold
func IsentropicReference(m0, gamma float64, n int) (c *Curve, err error) {
	if n < 2 {
		err = ErrSamples
		return
	}
	if m0 <= 1. {
		err = shockwave.ErrSubsonic
		return
	}
	var (
		thetaMax = math.Min(shockwave.DevMax(m0, gamma),
			supersonic.PrandtlMeyer(m0, gamma))
	)
	c = &Curve{
		Name:    fmt.Sprintf("isentropic M=%.4g", m0),
		Theta:   make([]float64, n),
		Sigma:   make([]float64, n),
		PsRatio: make([]float64, n),
	}
	floats.Span(c.Theta, 0., thetaMax)
	for i, theta := range c.Theta {
		if c.PsRatio[i], err = supersonic.IsentropicPsRatio(m0, theta, gamma); err != nil {
			return
		}
	}
	return
}

// Envelopes traces the maximum deflection and sonic downstream loci over a
// logarithmically spaced Mach range, the classic bounding curves of the
// sigma-theta diagram
func Envelopes(machMin, machMax, gamma float64, n int) (devMax, sonic *Curve, err error) {
	if n < 2 {
		err = ErrSamples
		return
	}
	if machMin <= 1. {
		err = shockwave.ErrSubsonic
		return
	}
	devMax = &Curve{
		Name:    "max deflection",
		Theta:   make([]float64, n),
		Sigma:   make([]float64, n),
		PsRatio: make([]float64, n),
	}
	sonic = &Curve{
		Name:    "sonic limit",
		Theta:   make([]float64, n),
		Sigma:   make([]float64, n),
		PsRatio: make([]float64, n),
	}
	machs := make([]float64, n)
	floats.LogSpan(machs, machMin, machMax)
	for i, m := range machs {
		devMax.Sigma[i] = shockwave.SigmaDevMax(m, gamma)
		devMax.Theta[i] = shockwave.DevMax(m, gamma)
		devMax.PsRatio[i] = shockwave.PsRatio(m*math.Sin(devMax.Sigma[i]*math.Pi/180.), gamma)
		sonic.Sigma[i] = shockwave.SigmaSonic(m, gamma)
		sonic.Theta[i] = shockwave.DevSonic(m, gamma)
		sonic.PsRatio[i] = shockwave.PsRatio(m*math.Sin(sonic.Sigma[i]*math.Pi/180.), gamma)
	}
	return
}

// Package shockwave implements the Rankine-Hugoniot jump conditions for
// normal and oblique shock waves in a calorically perfect gas.
//
// Normal shock ratios are functions of the upstream normal Mach number Mn.
// Oblique shock relations compose the normal ratios with the shock angle
// sigma; angles cross the package boundary in degrees.
package shockwave

import (
	"errors"
	"math"

	"github.com/notargets/shockpolar/utils"
)

var (
	// ErrSubsonic is returned when a shock relation is evaluated at an
	// upstream Mach number at or below 1, where no shock exists
	ErrSubsonic = errors.New("upstream Mach number must exceed 1")
	// ErrDetached is returned when the requested deflection exceeds the
	// maximum attached deflection for the upstream Mach number
	ErrDetached = errors.New("deflection exceeds maximum for attached shock")
)

// PsRatio returns the static pressure ratio Ps1/Ps0 across a shock of
// upstream normal Mach number mn
func PsRatio(mn, gamma float64) (r float64) {
	r = 1. + 2.*gamma/(gamma+1.)*(utils.POW(mn, 2)-1.)
	return
}

// RhoRatio returns the density ratio Rho1/Rho0 across a shock. It approaches
// the limit (gamma+1)/(gamma-1) for strong shocks
func RhoRatio(mn, gamma float64) (r float64) {
	var (
		mn2 = utils.POW(mn, 2)
	)
	r = (gamma + 1.) * mn2 / ((gamma-1.)*mn2 + 2.)
	return
}

// TsRatio returns the static temperature ratio Ts1/Ts0 across a shock
func TsRatio(mn, gamma float64) (r float64) {
	r = PsRatio(mn, gamma) / RhoRatio(mn, gamma)
	return
}

// PiRatio returns the total pressure ratio Pi1/Pi0 across a shock, the
// measure of the shock loss. Equal to 1 at mn=1, strictly below 1 beyond
func PiRatio(mn, gamma float64) (r float64) {
	r = math.Pow(RhoRatio(mn, gamma), gamma/(gamma-1.)) *
		math.Pow(PsRatio(mn, gamma), -1./(gamma-1.))
	return
}

// DownstreamMn returns the downstream normal Mach number
func DownstreamMn(mn, gamma float64) (mn1 float64) {
	var (
		mn2 = utils.POW(mn, 2)
	)
	mn1 = math.Sqrt((1. + 0.5*(gamma-1.)*mn2) / (gamma*mn2 - 0.5*(gamma-1.)))
	return
}

// MnFromPsRatio inverts PsRatio in closed form
func MnFromPsRatio(psRatio, gamma float64) (mn float64) {
	mn = math.Sqrt(1. + (psRatio-1.)*(gamma+1.)/(2.*gamma))
	return
}

// MnFromPiRatio inverts PiRatio by Newton iteration seeded on the supersonic
// branch at Mn=2
func MnFromPiRatio(piRatio, gamma float64) (mn float64, err error) {
	mn, err = utils.Newton(func(m float64) float64 {
		return PiRatio(m, gamma) - piRatio
	}, 2.)
	return
}

// Deflection returns the flow deflection angle theta produced by an oblique
// shock of angle sigma at upstream Mach number m0. Angles in degrees
func Deflection(m0, sigma, gamma float64) (theta float64) {
	var (
		sigRad = sigma * math.Pi / 180.
		mn     = m0 * math.Sin(sigRad)
	)
	theta = sigma - 180./math.Pi*math.Atan(math.Tan(sigRad)/RhoRatio(mn, gamma))
	return
}

// SigmaFromDeflection solves tan(sigma)/tan(sigma-theta) = Rho1/Rho0(m0 sin
// sigma) for the shock angle sigma, in degrees. The Newton iteration is
// seeded at the Mach angle plus theta, which selects the weak shock branch;
// the strong branch is never returned. Callers needing the strong solution
// must invert Deflection themselves with a seed near 90 degrees.
func SigmaFromDeflection(m0, theta, gamma float64) (sigma float64, err error) {
	if m0 <= 1. {
		err = ErrSubsonic
		return
	}
	if theta > DevMax(m0, gamma) {
		err = ErrDetached
		return
	}
	var (
		seed = 180./math.Pi*math.Asin(1./m0) + theta
	)
	sigma, err = utils.Newton(func(sig float64) float64 {
		return Deflection(m0, sig, gamma) - theta
	}, seed)
	return
}

// SigmaDevMax returns the shock angle of maximum deflection for upstream
// Mach number m0, the fold of the shock polar, in degrees
func SigmaDevMax(m0, gamma float64) (sigma float64) {
	var (
		m2  = utils.POW(m0, 2)
		m4  = utils.POW(m0, 4)
		gp1 = gamma + 1.
	)
	sin2 := 0.25 / (gamma * m2) * (gp1*m2 - 4. +
		math.Sqrt(gp1*(gp1*m4+8.*(gamma-1.)*m2+16.)))
	sigma = 180. / math.Pi * math.Asin(math.Sqrt(sin2))
	return
}

// SigmaSonic returns the shock angle producing a sonic downstream flow, in
// degrees. Together with SigmaDevMax it bounds the narrow band where the
// weak solution is subsonic downstream
func SigmaSonic(m0, gamma float64) (sigma float64) {
	var (
		m2  = utils.POW(m0, 2)
		m4  = utils.POW(m0, 4)
		gp1 = gamma + 1.
	)
	sin2 := 0.25 / (gamma * m2) * (gp1*m2 - (3. - gamma) +
		math.Sqrt(gp1*(gp1*m4-2.*(3.-gamma)*m2+(gamma+9.))))
	sigma = 180. / math.Pi * math.Asin(math.Sqrt(sin2))
	return
}

// DevMax returns the maximum attached deflection angle for upstream Mach
// number m0, in degrees
func DevMax(m0, gamma float64) (theta float64) {
	theta = Deflection(m0, SigmaDevMax(m0, gamma), gamma)
	return
}

// DevSonic returns the deflection angle at the sonic shock angle, in degrees
func DevSonic(m0, gamma float64) (theta float64) {
	theta = Deflection(m0, SigmaSonic(m0, gamma), gamma)
	return
}

// DownstreamMachFromPsRatio returns the downstream Mach number of the oblique
// shock that produces the given static pressure ratio at upstream Mach number
// m0. Used for the adapted jet regime of an over-expanded nozzle
func DownstreamMachFromPsRatio(m0, psRatio, gamma float64) (m1 float64, err error) {
	var (
		mn0 = MnFromPsRatio(psRatio, gamma)
	)
	if mn0 > m0 {
		err = ErrDetached
		return
	}
	var (
		mn1    = DownstreamMn(mn0, gamma)
		sigRad = math.Asin(mn0 / m0)
		sigma  = 180. / math.Pi * sigRad
		theta  = Deflection(m0, sigma, gamma)
	)
	m1 = mn1 / math.Sin(sigRad-theta*math.Pi/180.)
	return
}

// Package supersonic implements the Prandtl-Meyer function and the isentropic
// compression/expansion relations used as the lossless reference against
// shock compression. Angles cross the package boundary in degrees.
package supersonic

import (
	"math"

	"github.com/notargets/shockpolar/isentropic"
	"github.com/notargets/shockpolar/utils"
)

// PrandtlMeyer returns omega(M), the Prandtl-Meyer angle in degrees.
// Zero at M=1, increasing with Mach number
func PrandtlMeyer(mach, gamma float64) (omega float64) {
	var (
		g    = math.Sqrt((gamma + 1.) / (gamma - 1.))
		beta = math.Sqrt(utils.POW(mach, 2) - 1.)
	)
	omega = 180. / math.Pi * (g*math.Atan(beta/g) - math.Atan(beta))
	return
}

// MachFromPrandtlMeyer inverts PrandtlMeyer by Newton iteration. The solve
// runs in beta = sqrt(M^2-1), where omega is smooth and monotonic, so the
// iteration cannot step into the subsonic range. Seeded at Mach 2
func MachFromPrandtlMeyer(omega, gamma float64) (mach float64, err error) {
	if omega < 0. {
		err = utils.ErrRootNotFound
		return
	}
	var (
		g    = math.Sqrt((gamma + 1.) / (gamma - 1.))
		beta float64
	)
	beta, err = utils.Newton(func(b float64) float64 {
		return 180./math.Pi*(g*math.Atan(b/g)-math.Atan(b)) - omega
	}, math.Sqrt(3.))
	if err != nil {
		return
	}
	mach = math.Sqrt(1. + beta*beta)
	return
}

// IsentropicPsRatio returns the static pressure ratio produced by an
// isentropic deflection of the flow at Mach number mach. Positive deflections
// compress, negative deflections expand
func IsentropicPsRatio(mach, deflection, gamma float64) (r float64, err error) {
	var (
		m1 float64
	)
	if m1, err = MachFromPrandtlMeyer(PrandtlMeyer(mach, gamma)-deflection, gamma); err != nil {
		return
	}
	r = isentropic.PiPs(mach, gamma) / isentropic.PiPs(m1, gamma)
	return
}

// DeflectionFromIsentropicPsRatio inverts IsentropicPsRatio
func DeflectionFromIsentropicPsRatio(mach, psRatio, gamma float64) (deflection float64) {
	var (
		m1 = isentropic.MachFromPiPs(isentropic.PiPs(mach, gamma)/psRatio, gamma)
	)
	deflection = PrandtlMeyer(mach, gamma) - PrandtlMeyer(m1, gamma)
	return
}

// Package massflow implements the compressible mass flow relations: the
// reduced mass flow per unit area and the section ratio A/A* with its
// subsonic and supersonic inversions.
package massflow

import (
	"math"

	"github.com/notargets/shockpolar/utils"
)

// WeightMassFlow returns the reduced mass flow per unit area,
// mdot*sqrt(r*Ti)/(A*Pi), at the given Mach number
func WeightMassFlow(mach, r, gamma float64) (w float64) {
	var (
		gm1 = gamma - 1.
	)
	w = math.Sqrt(gamma/r) * mach *
		math.Pow(1.+0.5*gm1*mach*mach, -0.5*(gamma+1.)/gm1)
	return
}

// Sigma returns the section ratio A/A* for an isentropic flow at the given
// Mach number. Equal to 1 at M=1, above 1 on both sides
func Sigma(mach, gamma float64) (sigma float64) {
	var (
		gm1 = gamma - 1.
	)
	sigma = math.Pow(2./(gamma+1.)*(1.+0.5*gm1*mach*mach),
		0.5*(gamma+1.)/gm1) / mach
	return
}

// MachSubFromSigma inverts Sigma on the subsonic branch
func MachSubFromSigma(sigma, gamma float64) (mach float64, err error) {
	mach, err = MachFromSigma(sigma, 0.5, gamma)
	return
}

// MachSupFromSigma inverts Sigma on the supersonic branch
func MachSupFromSigma(sigma, gamma float64) (mach float64, err error) {
	mach, err = MachFromSigma(sigma, 2., gamma)
	return
}

// MachFromSigma inverts Sigma by Newton iteration from the caller's seed.
// Sigma is double valued: the seed selects the branch. The solve runs in
// ln(M) against ln(Sigma), where both branches are asymptotically linear,
// so the iteration stays on the seeded branch for any section ratio
func MachFromSigma(sigma, seed, gamma float64) (mach float64, err error) {
	if sigma < 1. {
		err = utils.ErrRootNotFound
		return
	}
	var (
		x float64
	)
	x, err = utils.Newton(func(x float64) float64 {
		return math.Log(Sigma(math.Exp(x), gamma)) - math.Log(sigma)
	}, math.Log(seed))
	if err != nil {
		return
	}
	mach = math.Exp(x)
	return
}

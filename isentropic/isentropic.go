// Package isentropic implements the isentropic flow relations for a calorically
// perfect gas: total/static temperature and pressure ratios as functions of
// Mach number and their closed form inversions
package isentropic

import (
	"math"
)

// GasConstantAir is the specific gas constant of air in J/(kg.K)
const GasConstantAir = 287.1

// TiTs returns the total over static temperature ratio at the given Mach number
func TiTs(mach, gamma float64) (r float64) {
	r = 1. + 0.5*(gamma-1.)*mach*mach
	return
}

// PiPs returns the total over static pressure ratio at the given Mach number
func PiPs(mach, gamma float64) (r float64) {
	r = math.Pow(TiTs(mach, gamma), gamma/(gamma-1.))
	return
}

// MachFromTiTs inverts TiTs
func MachFromTiTs(tits, gamma float64) (mach float64) {
	mach = math.Sqrt(2. * (tits - 1.) / (gamma - 1.))
	return
}

// MachFromPiPs inverts PiPs
func MachFromPiPs(pips, gamma float64) (mach float64) {
	mach = MachFromTiTs(math.Pow(pips, (gamma-1.)/gamma), gamma)
	return
}

// Velocity returns the flow speed for a Mach number and total temperature Ti,
// using the specific gas constant r
func Velocity(mach, ti, r, gamma float64) (u float64) {
	var (
		ts = ti / TiTs(mach, gamma)
	)
	u = mach * math.Sqrt(gamma*r*ts)
	return
}

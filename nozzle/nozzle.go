// Package nozzle computes the operating regimes of a converging-diverging
// nozzle from its section law: the nozzle pressure ratios bounding the choked
// subsonic, shocked diffuser and supersonic regimes, the exit Mach number for
// a given NPR, and the Mach/pressure distributions along the nozzle.
package nozzle

import (
	"errors"
	"math"

	"github.com/notargets/shockpolar/isentropic"
	"github.com/notargets/shockpolar/massflow"
	"github.com/notargets/shockpolar/shockwave"
	"github.com/notargets/shockpolar/utils"
)

var (
	// ErrSectionLaw is returned for a section law without a proper throat
	ErrSectionLaw = errors.New("section law must contract to a throat ahead of the exit")
	// ErrNPR is returned for a nozzle pressure ratio at or below 1
	ErrNPR = errors.New("nozzle pressure ratio must exceed 1")
)

// RegimeLimits collects the NPR boundaries of the nozzle regimes for one
// As/Ac, with the associated exit Mach numbers:
//   - below NPR0 the nozzle is choked with a fully subsonic diffuser
//   - between NPR0 and NPRsw a shock stands inside the diffuser
//   - at NPRsw the shock reaches the exit plane
//   - above NPR1 the supersonic exit flow is under-expanded
type RegimeLimits struct {
	NPR0, NPRsw, NPR1 float64
	Msub, Msh, Msup   float64
}

// NewRegimeLimits computes the regime boundaries for exit over throat
// section ratio asac
func NewRegimeLimits(asac, gamma float64) (rl *RegimeLimits, err error) {
	var (
		msub, msup float64
	)
	if msub, err = massflow.MachSubFromSigma(asac, gamma); err != nil {
		return
	}
	if msup, err = massflow.MachSupFromSigma(asac, gamma); err != nil {
		return
	}
	msh := shockwave.DownstreamMn(msup, gamma)
	rl = &RegimeLimits{
		NPR0:  isentropic.PiPs(msub, gamma),
		NPRsw: isentropic.PiPs(msh, gamma) / shockwave.PiRatio(msup, gamma),
		NPR1:  isentropic.PiPs(msup, gamma),
		Msub:  msub,
		Msh:   msh,
		Msup:  msup,
	}
	return
}

// NPRChokedSubsonic returns the NPR at which the nozzle chokes with a fully
// subsonic diffuser
func NPRChokedSubsonic(asac, gamma float64) (npr float64, err error) {
	var (
		rl *RegimeLimits
	)
	if rl, err = NewRegimeLimits(asac, gamma); err != nil {
		return
	}
	npr = rl.NPR0
	return
}

// NPRShockAtExit returns the NPR that places the diffuser shock exactly at
// the exit plane
func NPRShockAtExit(asac, gamma float64) (npr float64, err error) {
	var (
		rl *RegimeLimits
	)
	if rl, err = NewRegimeLimits(asac, gamma); err != nil {
		return
	}
	npr = rl.NPRsw
	return
}

// NPRChokedSupersonic returns the NPR of the shock free supersonic regime
func NPRChokedSupersonic(asac, gamma float64) (npr float64, err error) {
	var (
		rl *RegimeLimits
	)
	if rl, err = NewRegimeLimits(asac, gamma); err != nil {
		return
	}
	npr = rl.NPR1
	return
}

// msShocked is the analytic exit Mach number when a shock stands in the
// diffuser: mass conservation with the post shock total pressure loss
// reduces to a quadratic in Ms^2
func msShocked(asac, npr, gamma float64) (ms float64) {
	var (
		gm1 = gamma - 1.
		k   = npr / asac / math.Pow(0.5*(gamma+1.), 0.5*(gamma+1.)/gm1)
	)
	ms = math.Sqrt((math.Sqrt(1.+2.*gm1*k*k) - 1.) / gm1)
	return
}

// MsFromNPR returns the exit Mach number for the given NPR, switching on the
// nozzle regime
func MsFromNPR(asac, npr, gamma float64) (ms float64, err error) {
	if npr <= 1. {
		err = ErrNPR
		return
	}
	var (
		rl *RegimeLimits
	)
	if rl, err = NewRegimeLimits(asac, gamma); err != nil {
		return
	}
	switch {
	case npr < rl.NPR0:
		ms = isentropic.MachFromPiPs(npr, gamma)
	case npr > rl.NPRsw:
		ms = rl.Msup
	default:
		ms = msShocked(asac, npr, gamma)
	}
	return
}

// MadaptFromNPR returns the Mach number of the pressure adapted jet for the
// given NPR. Over-expanded supersonic exits recompress through an oblique
// shock, under-expanded exits continue the isentropic expansion
func MadaptFromNPR(asac, npr, gamma float64) (ms float64, err error) {
	if npr <= 1. {
		err = ErrNPR
		return
	}
	var (
		rl *RegimeLimits
	)
	if rl, err = NewRegimeLimits(asac, gamma); err != nil {
		return
	}
	switch {
	case npr < rl.NPR0:
		ms = isentropic.MachFromPiPs(npr, gamma)
	case npr > rl.NPR1: // under-expanded jet
		ms = isentropic.MachFromPiPs(npr, gamma)
	case npr > rl.NPRsw: // oblique shock in the jet
		ms, err = shockwave.DownstreamMachFromPsRatio(rl.Msup, rl.NPR1/npr, gamma)
	default:
		ms = msShocked(asac, npr, gamma)
	}
	return
}

// Nozzle holds the flow state along a nozzle defined by a section law. The
// state is recomputed by SetNPR; the distributions are then read back with
// Mach, Ps and Pi
type Nozzle struct {
	Gamma   float64
	X       []float64
	AxAc    []float64 // local section over throat section
	AsAc    float64   // exit section over throat section
	IThroat int
	Limits  *RegimeLimits

	mach, ps, pi []float64
}

// NewNozzle builds a Nozzle from coordinates x and the section law. The
// section is normalized so the minimum is the throat; the throat must not
// be the exit
func NewNozzle(x, section []float64, gamma float64) (nz *Nozzle, err error) {
	var (
		n       = len(section)
		iThroat int
		aThroat = math.MaxFloat64
	)
	for i, a := range section {
		if a < aThroat {
			aThroat, iThroat = a, i
		}
	}
	if iThroat == n-1 || aThroat <= 0. {
		err = ErrSectionLaw
		return
	}
	nz = &Nozzle{
		Gamma:   gamma,
		X:       x,
		AxAc:    make([]float64, n),
		AsAc:    section[n-1] / aThroat,
		IThroat: iThroat,
	}
	for i, a := range section {
		nz.AxAc[i] = a / aThroat
	}
	if nz.Limits, err = NewRegimeLimits(nz.AsAc, gamma); err != nil {
		return
	}
	return
}

// SetNPR computes the Mach, static pressure and total pressure distributions
// for the given nozzle pressure ratio. Pressures are normalized by the inlet
// total pressure
func (nz *Nozzle) SetNPR(npr float64) (err error) {
	var (
		gamma = nz.Gamma
		n     = len(nz.AxAc)
		rl    = nz.Limits
	)
	if npr <= 1. {
		return ErrNPR
	}
	nz.pi = utils.ConstArray(n, 1.)
	nz.mach = make([]float64, n)
	nz.ps = make([]float64, n)
	if npr < rl.NPR0 {
		// Unchoked: subsonic everywhere, scaled by the exit Mach number
		ms := isentropic.MachFromPiPs(npr, gamma)
		sigS := massflow.Sigma(ms, gamma)
		for i := range nz.mach {
			if nz.mach[i], err = massflow.MachSubFromSigma(
				nz.AxAc[i]/nz.AsAc*sigS, gamma); err != nil {
				return
			}
		}
	} else {
		// Choked: sonic throat, supersonic diffuser
		for i := range nz.mach {
			if i <= nz.IThroat {
				nz.mach[i], err = massflow.MachSubFromSigma(nz.AxAc[i], gamma)
			} else {
				nz.mach[i], err = massflow.MachSupFromSigma(nz.AxAc[i], gamma)
			}
			if err != nil {
				return
			}
		}
		if npr < rl.NPRsw {
			// Shock in the diffuser: exit state from the analytic solution,
			// shock position from the total pressure loss
			ms := msShocked(nz.AsAc, npr, gamma)
			piLoss := isentropic.PiPs(ms, gamma) / npr
			var msh float64
			if msh, err = shockwave.MnFromPiRatio(piLoss, gamma); err != nil {
				return
			}
			ish := utils.ArgMinAbs(nz.mach, msh)
			sigS := massflow.Sigma(ms, gamma)
			for i := ish; i < n; i++ {
				if nz.mach[i], err = massflow.MachSubFromSigma(
					nz.AxAc[i]*sigS/nz.AsAc, gamma); err != nil {
					return
				}
				nz.pi[i] = piLoss
			}
		}
	}
	for i := range nz.ps {
		nz.ps[i] = nz.pi[i] / isentropic.PiPs(nz.mach[i], gamma)
	}
	return
}

// Mach returns the Mach number distribution of the last SetNPR
func (nz *Nozzle) Mach() []float64 { return nz.mach }

// Ps returns the static pressure distribution of the last SetNPR
func (nz *Nozzle) Ps() []float64 { return nz.ps }

// Pi returns the total pressure distribution of the last SetNPR
func (nz *Nozzle) Pi() []float64 { return nz.pi }

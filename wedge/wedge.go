// Package wedge evaluates the supersonic flow over a wedge shaped profile at
// incidence: the attached oblique shocks on each surface, the downstream
// states, and the lossless isentropic compression for the same deflections
// as the comparison reference.
package wedge

import (
	"fmt"
	"math"

	"github.com/notargets/shockpolar/isentropic"
	"github.com/notargets/shockpolar/shockwave"
	"github.com/notargets/shockpolar/supersonic"
)

// Case holds the free stream and geometry parameters. Angles in degrees,
// upstream static pressure P0 in Pa, static temperature T0 in K.
// ThicknessRatio is h/l, the wedge height over its length
type Case struct {
	Gamma          float64
	Mach           float64
	P0, T0         float64
	Alpha          float64
	ThicknessRatio float64
}

// HalfAngle returns the wedge half angle in degrees
func (c Case) HalfAngle() (theta float64) {
	theta = 180. / math.Pi * math.Atan(c.ThicknessRatio)
	return
}

// SurfaceState is the flow state on one surface of the wedge. For positive
// deflections it is the weak oblique shock solution; for negative ones the
// surface sees a Prandtl-Meyer expansion and the shock fields are zero with
// Shock false
type SurfaceState struct {
	Deflection float64 // deg
	Shock      bool
	Sigma      float64 // shock angle, deg
	Mn0, Mn1   float64 // normal Mach numbers across the shock
	Mach1      float64 // downstream Mach number
	PsRatio    float64 // static pressure ratio across the compression
	RhoRatio   float64
	TsRatio    float64
	PiRatio    float64 // total pressure ratio, 1 for the isentropic surface
	Ps, Ts     float64 // downstream static pressure and temperature
	// IsentropicPsRatio is the pressure ratio of a lossless compression
	// through the same deflection, for comparison against the shock. It is
	// capped at the sonic turn when the deflection exceeds the upstream
	// Prandtl-Meyer angle
	IsentropicPsRatio float64
}

// Solution is the complete wedge flow: both surfaces plus the envelope
// angles of the upstream Mach number
type Solution struct {
	Case
	Upper, Lower SurfaceState
	ThetaMax     float64
	SigmaMax     float64
	SigmaSonic   float64
}

// Solve computes the attached shock solution for the wedge case. The upper
// surface deflection is the half angle minus the incidence, the lower one
// the half angle plus the incidence. A deflection beyond the maximum for
// the upstream Mach number returns shockwave.ErrDetached
func Solve(c Case) (sol *Solution, err error) {
	if c.Mach <= 1. {
		err = shockwave.ErrSubsonic
		return
	}
	sol = &Solution{
		Case:       c,
		ThetaMax:   shockwave.DevMax(c.Mach, c.Gamma),
		SigmaMax:   shockwave.SigmaDevMax(c.Mach, c.Gamma),
		SigmaSonic: shockwave.SigmaSonic(c.Mach, c.Gamma),
	}
	theta := c.HalfAngle()
	if sol.Upper, err = c.surface(theta - c.Alpha); err != nil {
		return
	}
	if sol.Lower, err = c.surface(theta + c.Alpha); err != nil {
		return
	}
	return
}

func (c Case) surface(deflection float64) (s SurfaceState, err error) {
	var (
		gamma = c.Gamma
	)
	s.Deflection = deflection
	if deflection <= 0. {
		// Expansion surface: lossless turn through the Prandtl-Meyer fan
		if s.Mach1, err = supersonic.MachFromPrandtlMeyer(
			supersonic.PrandtlMeyer(c.Mach, gamma)-deflection, gamma); err != nil {
			return
		}
		s.PsRatio = isentropic.PiPs(c.Mach, gamma) / isentropic.PiPs(s.Mach1, gamma)
		s.TsRatio = isentropic.TiTs(c.Mach, gamma) / isentropic.TiTs(s.Mach1, gamma)
		s.RhoRatio = s.PsRatio / s.TsRatio
		s.PiRatio = 1.
	} else {
		s.Shock = true
		if s.Sigma, err = shockwave.SigmaFromDeflection(c.Mach, deflection, gamma); err != nil {
			return
		}
		sigRad := s.Sigma * math.Pi / 180.
		s.Mn0 = c.Mach * math.Sin(sigRad)
		s.Mn1 = shockwave.DownstreamMn(s.Mn0, gamma)
		s.Mach1 = s.Mn1 / math.Sin(sigRad-deflection*math.Pi/180.)
		s.PsRatio = shockwave.PsRatio(s.Mn0, gamma)
		s.RhoRatio = shockwave.RhoRatio(s.Mn0, gamma)
		s.TsRatio = shockwave.TsRatio(s.Mn0, gamma)
		s.PiRatio = shockwave.PiRatio(s.Mn0, gamma)
	}
	// A lossless compression can turn the flow at most through the full
	// Prandtl-Meyer angle, where the downstream goes sonic. At low Mach the
	// attached shock admits larger deflections than that, so the reference
	// is capped at the sonic turn
	ref := math.Min(deflection, supersonic.PrandtlMeyer(c.Mach, gamma))
	if s.IsentropicPsRatio, err = supersonic.IsentropicPsRatio(c.Mach, ref, gamma); err != nil {
		return
	}
	s.Ps = c.P0 * s.PsRatio
	s.Ts = c.T0 * s.TsRatio
	return
}

// Print writes the solution as a diagnostic table, with the lossless
// compression alongside the shock values for comparison
func (sol *Solution) Print() {
	fmt.Printf("%8.5f\t\t= Gamma\n", sol.Gamma)
	fmt.Printf("%8.5f\t\t= Upstream Mach\n", sol.Mach)
	fmt.Printf("%8.2f\t\t= P0 (Pa)\n", sol.P0)
	fmt.Printf("%8.2f\t\t= T0 (K)\n", sol.T0)
	fmt.Printf("%8.5f\t\t= Alpha (deg)\n", sol.Alpha)
	fmt.Printf("%8.5f\t\t= Half angle (deg)\n", sol.HalfAngle())
	fmt.Printf("%8.5f\t\t= Max deflection (deg)\n", sol.ThetaMax)
	fmt.Printf("%8.5f\t\t= Sigma at max deflection (deg)\n", sol.SigmaMax)
	fmt.Printf("%8.5f\t\t= Sigma at sonic exit (deg)\n", sol.SigmaSonic)
	for _, sf := range []struct {
		name string
		s    SurfaceState
	}{
		{"Upper", sol.Upper},
		{"Lower", sol.Lower},
	} {
		s := sf.s
		fmt.Printf("[%s] deflection = %8.5f deg\n", sf.name, s.Deflection)
		if s.Shock {
			fmt.Printf("\tsigma = %10.6f deg, Mn0 = %8.5f, Mn1 = %8.5f, M1 = %8.5f\n",
				s.Sigma, s.Mn0, s.Mn1, s.Mach1)
			fmt.Printf("\tPs1/Ps0 = %8.5f, Rho1/Rho0 = %8.5f, Ts1/Ts0 = %8.5f, Pi1/Pi0 = %8.5f\n",
				s.PsRatio, s.RhoRatio, s.TsRatio, s.PiRatio)
		} else {
			fmt.Printf("\texpansion: M1 = %8.5f, Ps1/Ps0 = %8.5f\n", s.Mach1, s.PsRatio)
		}
		fmt.Printf("\tPs = %10.2f Pa, Ts = %8.2f K\n", s.Ps, s.Ts)
		fmt.Printf("\tisentropic Ps1/Ps0 = %8.5f (shock loss %6.3f%%)\n",
			s.IsentropicPsRatio, 100.*(1.-s.PiRatio))
	}
}

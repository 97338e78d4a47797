package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file
type CaseParameters struct {
	Title          string    `yaml:"Title"`
	Gamma          float64   `yaml:"Gamma"`
	Mach           float64   `yaml:"Mach"`
	P0             float64   `yaml:"P0"`    // upstream static pressure, Pa
	T0             float64   `yaml:"T0"`    // upstream static temperature, K
	Alpha          float64   `yaml:"Alpha"` // angle of attack, deg
	ThicknessRatio float64   `yaml:"ThicknessRatio"`
	AsAc           float64   `yaml:"AsAc"` // nozzle exit over throat section
	NPR            float64   `yaml:"NPR"`
	MachSweep      []float64 `yaml:"MachSweep"` // polar curves to draw
	Samples        int       `yaml:"Samples"`
	Output         string    `yaml:"Output"` // output file prefix
}

func (cp *CaseParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

// ApplyDefaults fills the fields a case file may omit
func (cp *CaseParameters) ApplyDefaults() {
	if cp.Gamma == 0 {
		cp.Gamma = 1.4
	}
	if cp.P0 == 0 {
		cp.P0 = 101325.
	}
	if cp.T0 == 0 {
		cp.T0 = 288.15
	}
	if cp.Samples == 0 {
		cp.Samples = 201
	}
	if len(cp.MachSweep) == 0 {
		cp.MachSweep = []float64{1.5, 2., 2.5, 3., 5.}
	}
	if cp.Output == "" {
		cp.Output = "shockpolar"
	}
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("%8.5f\t\t= Gamma\n", cp.Gamma)
	fmt.Printf("%8.5f\t\t= Mach\n", cp.Mach)
	fmt.Printf("%8.2f\t\t= P0 (Pa)\n", cp.P0)
	fmt.Printf("%8.2f\t\t= T0 (K)\n", cp.T0)
	fmt.Printf("%8.5f\t\t= Alpha (deg)\n", cp.Alpha)
	fmt.Printf("%8.5f\t\t= ThicknessRatio (h/l)\n", cp.ThicknessRatio)
	if cp.AsAc != 0 {
		fmt.Printf("%8.5f\t\t= AsAc\n", cp.AsAc)
		fmt.Printf("%8.5f\t\t= NPR\n", cp.NPR)
	}
	fmt.Printf("%v\t= MachSweep\n", cp.MachSweep)
	fmt.Printf("[%d]\t\t\t= Samples\n", cp.Samples)
}

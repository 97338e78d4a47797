/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/shockpolar/InputParameters"
	"github.com/notargets/shockpolar/shockwave"
	"github.com/notargets/shockpolar/wedge"
)

// WedgeCmd represents the wedge command
var WedgeCmd = &cobra.Command{
	Use:   "wedge",
	Short: "Oblique shock solution for a wedge profile at incidence",
	Long: `
Solves the weak attached oblique shocks on both surfaces of a wedge shaped
profile and prints the downstream states against the isentropic compression
reference,

shockpolar wedge -I wedge_case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		caseFile, err := cmd.Flags().GetString("caseFile")
		if err != nil {
			panic(err)
		}
		cp := processCaseInput(caseFile)
		RunWedge(cp)
	},
}

func processCaseInput(caseFile string) (cp *InputParameters.CaseParameters) {
	if len(caseFile) == 0 {
		err := fmt.Errorf("must supply a case file (-I, --caseFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "20 degree wedge at Mach 2"
Gamma: 1.4
Mach: 2.
P0: 101325.
T0: 288.15
Alpha: 0.
ThicknessRatio: 0.364    # h/l, tan of the half angle
MachSweep: [1.5, 2., 3.]
Samples: 201
Output: wedge
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	data, err := os.ReadFile(caseFile)
	if err != nil {
		panic(err)
	}
	cp = &InputParameters.CaseParameters{}
	if err = cp.Parse(data); err != nil {
		panic(err)
	}
	cp.ApplyDefaults()
	return
}

func RunWedge(cp *InputParameters.CaseParameters) {
	cp.Print()
	sol, err := wedge.Solve(wedge.Case{
		Gamma:          cp.Gamma,
		Mach:           cp.Mach,
		P0:             cp.P0,
		T0:             cp.T0,
		Alpha:          cp.Alpha,
		ThicknessRatio: cp.ThicknessRatio,
	})
	if err != nil {
		switch {
		case errors.Is(err, shockwave.ErrDetached):
			fmt.Printf("error: %s - no attached shock solution exists for this geometry\n", err.Error())
		case errors.Is(err, shockwave.ErrSubsonic):
			fmt.Printf("error: %s - shocks require a supersonic free stream\n", err.Error())
		default:
			fmt.Printf("error: %s\n", err.Error())
		}
		os.Exit(1)
	}
	sol.Print()
}

func init() {
	rootCmd.AddCommand(WedgeCmd)
	WedgeCmd.Flags().StringP("caseFile", "I", "", "YAML case file with the free stream and wedge geometry")
}

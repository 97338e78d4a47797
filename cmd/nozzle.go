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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/shockpolar/nozzle"
)

// NozzleCmd represents the nozzle command
var NozzleCmd = &cobra.Command{
	Use:   "nozzle",
	Short: "Nozzle operating regime report for a section ratio and NPR",
	Long: `
Computes the nozzle pressure ratio boundaries for the given exit over throat
section ratio, classifies the regime at the requested NPR and reports the
exit and adapted jet Mach numbers,

shockpolar nozzle -a 2.636 -r 1.5`,
	Run: func(cmd *cobra.Command, args []string) {
		asac, _ := cmd.Flags().GetFloat64("asac")
		npr, _ := cmd.Flags().GetFloat64("npr")
		gamma, _ := cmd.Flags().GetFloat64("gamma")
		RunNozzle(asac, npr, gamma)
	},
}

func RunNozzle(asac, npr, gamma float64) {
	rl, err := nozzle.NewRegimeLimits(asac, gamma)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("%8.5f\t\t= As/Ac\n", asac)
	fmt.Printf("%8.5f\t\t= NPR choked subsonic (Ms=%7.5f)\n", rl.NPR0, rl.Msub)
	fmt.Printf("%8.5f\t\t= NPR shock at exit   (Ms=%7.5f)\n", rl.NPRsw, rl.Msh)
	fmt.Printf("%8.5f\t\t= NPR supersonic      (Ms=%7.5f)\n", rl.NPR1, rl.Msup)
	if npr <= 1. {
		return
	}
	ms, err := nozzle.MsFromNPR(asac, npr, gamma)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	madapt, err := nozzle.MadaptFromNPR(asac, npr, gamma)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	var regime string
	switch {
	case npr < rl.NPR0:
		regime = "unchoked subsonic"
	case npr < rl.NPRsw:
		regime = "shock in diffuser"
	case npr < rl.NPR1:
		regime = "over-expanded supersonic"
	default:
		regime = "under-expanded supersonic"
	}
	fmt.Printf("NPR = %8.5f: %s, exit Ms = %7.5f, adapted jet M = %7.5f\n",
		npr, regime, ms, madapt)
}

func init() {
	rootCmd.AddCommand(NozzleCmd)
	NozzleCmd.Flags().Float64P("asac", "a", 2.636, "exit over throat section ratio")
	NozzleCmd.Flags().Float64P("npr", "r", 0., "nozzle pressure ratio to classify (skip if <= 1)")
	NozzleCmd.Flags().Float64P("gamma", "g", 1.4, "ratio of specific heats")
}

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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/shockpolar/polar"
)

// PolarCmd represents the polar command
var PolarCmd = &cobra.Command{
	Use:   "polar",
	Short: "Render shock polar diagrams for a list of Mach numbers",
	Long: `
Samples the shock polar (shock angle and pressure ratio versus deflection)
for each Mach number, adds the maximum deflection and sonic envelope loci
and the isentropic compression references, and writes the diagrams as PNG,

shockpolar polar -m 1.5,2,3 -o polar`,
	Run: func(cmd *cobra.Command, args []string) {
		machs, _ := cmd.Flags().GetFloat64Slice("mach")
		gamma, _ := cmd.Flags().GetFloat64("gamma")
		samples, _ := cmd.Flags().GetInt("samples")
		output, _ := cmd.Flags().GetString("output")
		preview, _ := cmd.Flags().GetBool("preview")
		prof, _ := cmd.Flags().GetBool("profile")
		if prof {
			defer profile.Start().Stop()
		}
		RunPolar(machs, gamma, samples, output, preview)
	},
}

func RunPolar(machs []float64, gamma float64, samples int, output string, preview bool) {
	var (
		sigmaCurves    []*polar.Curve
		pressureCurves []*polar.Curve
	)
	for _, m := range machs {
		c, err := polar.ShockPolar(m, gamma, samples)
		if err != nil {
			fmt.Printf("error: %s (Mach %g)\n", err.Error(), m)
			os.Exit(1)
		}
		sigmaCurves = append(sigmaCurves, c)
		w, err := polar.WeakPolar(m, gamma, samples)
		if err != nil {
			fmt.Printf("error: %s (Mach %g)\n", err.Error(), m)
			os.Exit(1)
		}
		pressureCurves = append(pressureCurves, w)
		iso, err := polar.IsentropicReference(m, gamma, samples)
		if err != nil {
			fmt.Printf("error: %s (Mach %g)\n", err.Error(), m)
			os.Exit(1)
		}
		pressureCurves = append(pressureCurves, iso)
		if preview {
			fmt.Println(c.Preview(12))
		}
	}
	devMax, sonic, err := polar.Envelopes(1.05, 50., gamma, samples)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	sigmaCurves = append(sigmaCurves, devMax, sonic)

	sigmaFile := output + "_sigma_theta.png"
	if err = polar.RenderSigmaTheta(sigmaCurves, sigmaFile); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", sigmaFile)
	pressureFile := output + "_ps_theta.png"
	if err = polar.RenderPressureTheta(pressureCurves, pressureFile); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", pressureFile)
}

func init() {
	rootCmd.AddCommand(PolarCmd)
	PolarCmd.Flags().Float64SliceP("mach", "m", []float64{1.5, 2., 2.5, 3., 5.}, "Mach numbers to draw polars for")
	PolarCmd.Flags().Float64P("gamma", "g", 1.4, "ratio of specific heats")
	PolarCmd.Flags().IntP("samples", "n", 201, "points per curve")
	PolarCmd.Flags().StringP("output", "o", "shockpolar", "output file prefix")
	PolarCmd.Flags().BoolP("preview", "p", false, "print an ASCII preview of each polar")
	PolarCmd.Flags().Bool("profile", false, "enable CPU profiling of the sweep")
}

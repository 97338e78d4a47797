package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/shockpolar/InputParameters"
)

func TestCaseParameters(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
Gamma: 1.4
Mach: 2.
Alpha: 5.
ThicknessRatio: 0.364
MachSweep: [1.5, 2., 3.]
Samples: 101
`)
	var input InputParameters.CaseParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Mach, 2.)
	assert.Equal(t, input.Alpha, 5.)
	assert.Equal(t, input.MachSweep, []float64{1.5, 2., 3.})
	input.ApplyDefaults()
	// Omitted fields pick up the standard atmosphere and plot defaults
	assert.Equal(t, input.P0, 101325.)
	assert.Equal(t, input.T0, 288.15)
	assert.Equal(t, input.Samples, 101)
	assert.Equal(t, input.Output, "shockpolar")
	input.Print()
}

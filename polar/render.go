package polar

import (
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func (c *Curve) sigmaTheta() (pts plotter.XYs) {
	pts = make(plotter.XYs, len(c.Theta))
	for i := range c.Theta {
		pts[i].X = c.Theta[i]
		pts[i].Y = c.Sigma[i]
	}
	return
}

func (c *Curve) pressureTheta() (pts plotter.XYs) {
	pts = make(plotter.XYs, len(c.Theta))
	for i := range c.Theta {
		pts[i].X = c.Theta[i]
		pts[i].Y = c.PsRatio[i]
	}
	return
}

// RenderSigmaTheta writes the sigma-theta polar diagram for the given curves
// to a PNG file. Envelope curves render like any other curve; pass them last
// so they draw on top
func RenderSigmaTheta(curves []*Curve, path string) (err error) {
	p := plot.New()
	p.Title.Text = "Shock polar"
	p.X.Label.Text = "deflection angle (deg)"
	p.Y.Label.Text = "shock angle (deg)"
	p.Legend.Top = true
	p.Legend.Left = true
	vs := make([]interface{}, 0, 2*len(curves))
	for _, c := range curves {
		vs = append(vs, c.Name, c.sigmaTheta())
	}
	if err = plotutil.AddLines(p, vs...); err != nil {
		return
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// RenderPressureTheta writes the pressure-deflection diagram to a PNG file
func RenderPressureTheta(curves []*Curve, path string) (err error) {
	p := plot.New()
	p.Title.Text = "Shock compression vs deflection"
	p.X.Label.Text = "deflection angle (deg)"
	p.Y.Label.Text = "Ps1/Ps0"
	p.Legend.Top = true
	p.Legend.Left = true
	vs := make([]interface{}, 0, 2*len(curves))
	for _, c := range curves {
		vs = append(vs, c.Name, c.pressureTheta())
	}
	if err = plotutil.AddLines(p, vs...); err != nil {
		return
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// Preview renders the sigma-theta curve as an ASCII chart for a quick look
// in the terminal without opening the PNG
func (c *Curve) Preview(height int) (s string) {
	s = asciigraph.Plot(c.Sigma,
		asciigraph.Height(height),
		asciigraph.Caption(c.Name+" (shock angle over sweep)"))
	// asciigraph emits trailing spaces on some rows
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = strings.Join(lines, "\n")
	return
}

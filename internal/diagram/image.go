package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gomohr/internal/stress"
)

// ExportCurveDiagram exports the stress transformation curves to an image
// file: σx'(θ) and τx'y'(θ) over the sampled domain, with a dashed vertical
// indicator and a marker at the current rotation angle.
func ExportCurveDiagram(data DiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Normal Stress Transformation"
	p.X.Label.Text = "Rotation Angle θ (°)"
	p.Y.Label.Text = "Stress"

	thetas := data.Curve.Thetas()
	sigmas := data.Curve.SigmaX1s()
	taus := data.Curve.TauX1Y1s()

	sigmaPts := make(plotter.XYs, len(thetas))
	tauPts := make(plotter.XYs, len(thetas))
	for i := range thetas {
		sigmaPts[i] = plotter.XY{X: thetas[i], Y: sigmas[i]}
		tauPts[i] = plotter.XY{X: thetas[i], Y: taus[i]}
	}

	sigmaLine, err := plotter.NewLine(sigmaPts)
	if err != nil {
		return err
	}
	sigmaLine.LineStyle.Width = vg.Points(2)
	sigmaLine.LineStyle.Color = color.RGBA{R: 99, G: 110, B: 250, A: 255}
	p.Add(sigmaLine)
	p.Legend.Add("σx'", sigmaLine)

	tauLine, err := plotter.NewLine(tauPts)
	if err != nil {
		return err
	}
	tauLine.LineStyle.Width = vg.Points(2)
	tauLine.LineStyle.Color = color.RGBA{R: 239, G: 85, B: 59, A: 255}
	tauLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(tauLine)
	p.Legend.Add("τx'y'", tauLine)

	// Vertical indicator at the current angle, spanning the data range with
	// a little padding.
	yMin, yMax := data.Curve.Bounds()
	yPad := (yMax - yMin) * 0.1
	if yPad == 0 {
		yPad = 1
	}
	indicator, err := plotter.NewLine(plotter.XYs{
		{X: data.Theta, Y: yMin - yPad},
		{X: data.Theta, Y: yMax + yPad},
	})
	if err != nil {
		return err
	}
	indicator.LineStyle.Width = vg.Points(1.5)
	indicator.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	indicator.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(indicator)

	current, err := plotter.NewScatter(plotter.XYs{
		{X: data.Theta, Y: data.Point.SigmaX1},
		{X: data.Theta, Y: data.Point.TauX1Y1},
	})
	if err != nil {
		return err
	}
	current.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	current.GlyphStyle.Radius = vg.Points(5)
	current.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(current)

	if len(thetas) > 0 {
		p.X.Min = thetas[0]
		p.X.Max = thetas[len(thetas)-1]
	}
	p.Y.Min = yMin - yPad
	p.Y.Max = yMax + yPad

	return savePlot(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportMohrDiagram exports the Mohr's Circle to an image file with the
// σ/τ axes, the circle, the θ=0 reference face, the radius arm to the
// current rotated face, and the principal stress points.
func ExportMohrDiagram(data DiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Mohr's Circle"
	p.X.Label.Text = "Normal Stress (σ)"
	p.Y.Label.Text = "Shear Stress (τ)"

	c := data.Circle

	// Equal-span window centered on σavg so the circle renders round.
	margin := c.Radius * 1.3
	if margin == 0 {
		margin = 1
	}
	p.X.Min = c.Center - margin
	p.X.Max = c.Center + margin
	p.Y.Min = -margin
	p.Y.Max = margin

	// σ axis (τ=0) and τ axis (σ=0, when visible).
	sigmaAxis, err := plotter.NewLine(plotter.XYs{
		{X: p.X.Min, Y: 0},
		{X: p.X.Max, Y: 0},
	})
	if err != nil {
		return err
	}
	sigmaAxis.LineStyle.Color = color.Gray{Y: 128}
	p.Add(sigmaAxis)

	if p.X.Min <= 0 && p.X.Max >= 0 {
		tauAxis, err := plotter.NewLine(plotter.XYs{
			{X: 0, Y: p.Y.Min},
			{X: 0, Y: p.Y.Max},
		})
		if err != nil {
			return err
		}
		tauAxis.LineStyle.Color = color.Gray{Y: 128}
		p.Add(tauAxis)
	}

	// Circle perimeter.
	xs, ys := stress.MohrPoints(c, 360)
	perimeter := make(plotter.XYs, len(xs))
	for i := range xs {
		perimeter[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	circleLine, err := plotter.NewLine(perimeter)
	if err != nil {
		return err
	}
	circleLine.LineStyle.Width = vg.Points(2)
	circleLine.LineStyle.Color = color.Black
	p.Add(circleLine)

	// Original x-face at θ=0.
	original, err := plotter.NewScatter(plotter.XYs{
		{X: data.State.SigmaX, Y: data.State.TauXY},
	})
	if err != nil {
		return err
	}
	original.GlyphStyle.Color = color.Gray{Y: 96}
	original.GlyphStyle.Radius = vg.Points(5)
	original.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(original)

	// Radius arm from the center to the current rotated face.
	arm, err := plotter.NewLine(plotter.XYs{
		{X: c.Center, Y: 0},
		{X: data.Point.SigmaX1, Y: data.Point.TauX1Y1},
	})
	if err != nil {
		return err
	}
	arm.LineStyle.Width = vg.Points(1.5)
	arm.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	arm.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(arm)

	current, err := plotter.NewScatter(plotter.XYs{
		{X: data.Point.SigmaX1, Y: data.Point.TauX1Y1},
	})
	if err != nil {
		return err
	}
	current.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	current.GlyphStyle.Radius = vg.Points(6)
	current.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(current)

	// Principal stresses sit on the σ axis.
	principal, err := plotter.NewScatter(plotter.XYs{
		{X: c.Sigma1, Y: 0},
		{X: c.Sigma2, Y: 0},
	})
	if err != nil {
		return err
	}
	principal.GlyphStyle.Color = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	principal.GlyphStyle.Radius = vg.Points(4)
	principal.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(principal)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: c.Sigma1, Y: margin * 0.06},
			{X: c.Sigma2, Y: margin * 0.06},
		},
		Labels: []string{
			fmt.Sprintf("σ1=%.1f", c.Sigma1),
			fmt.Sprintf("σ2=%.1f", c.Sigma2),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return savePlot(p, 7*vg.Inch, 7*vg.Inch, filename)
}

// savePlot writes the plot using the format implied by the file extension,
// defaulting to PNG, creating parent directories as needed.
func savePlot(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

package evaluation

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WritePlot renders the curve as a PNG: the ROC polyline, the reference
// diagonal and [0,1]x[0,1] axis bounds. Presentation only; callers that
// skip it lose nothing numeric.
func (c *Curve) WritePlot(w io.Writer) error {
	p := plot.New()
	p.Title.Text = "Melodiness receiver operating characteristic"
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	pts := make(plotter.XYs, c.Len())
	for i := range pts {
		pts[i].X = c.FPR[i]
		pts[i].Y = c.TPR[i]
	}

	roc, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build ROC line: %w", err)
	}
	roc.Color = color.RGBA{B: 255, A: 255}

	diagonal, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return fmt.Errorf("failed to build reference diagonal: %w", err)
	}
	diagonal.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p.Add(roc, diagonal)
	p.Legend.Add("ROC curve", roc)

	writer, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("failed to render ROC plot: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write ROC plot: %w", err)
	}

	return nil
}

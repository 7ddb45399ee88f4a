package preprocessing

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/moleculight/photoswitch/pkg/errors"
)

// SaveScreePlot writes a cumulative explained-variance plot to path. The
// image format follows the file extension (png, pdf, svg, ...).
func (p *PCA) SaveScreePlot(path string) error {
	if !p.IsFitted() {
		return errors.NewNotFittedError("PCA", "SaveScreePlot")
	}

	pl := plot.New()
	pl.Title.Text = "Cumulative explained variance"
	pl.X.Label.Text = "components kept"
	pl.Y.Label.Text = "fraction of total variance"
	pl.Y.Min = 0
	pl.Y.Max = 1
	pl.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(p.ExplainedVarianceRatio))
	cumulative := 0.0
	for i, ratio := range p.ExplainedVarianceRatio {
		cumulative += ratio
		pts[i] = plotter.XY{X: float64(i + 1), Y: cumulative}
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return errors.Wrap(err, "PCA.SaveScreePlot: building series")
	}
	line.LineStyle.Width = vg.Points(1)
	pl.Add(line, points)

	if err := pl.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "PCA.SaveScreePlot: saving %s", path)
	}
	return nil
}

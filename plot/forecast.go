// Package plot renders forecasting results with gonum/plot.
package plot

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/convforge/convcast/pkg/errors"
)

// ForecastPlot draws true and predicted values against a shared index axis.
type ForecastPlot struct {
	p *plot.Plot
}

// NewForecastPlot builds a plot of yTrue and yPred, both n×1, with a legend
// and labeled axes. The two sequences must have the same length.
func NewForecastPlot(title string, yTrue, yPred mat.Matrix) (*ForecastPlot, error) {
	rt, ct := yTrue.Dims()
	rp, cp := yPred.Dims()
	if ct != 1 || cp != 1 {
		return nil, errors.NewValueError("NewForecastPlot", "inputs must be column vectors")
	}
	if rt == 0 {
		return nil, errors.NewValueError("NewForecastPlot", "empty input")
	}
	if rt != rp {
		return nil, errors.NewDimensionError("NewForecastPlot", rt, rp, 0)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time step"
	p.Y.Label.Text = "Value"
	p.Legend.Top = true

	trueLine, err := plotter.NewLine(columnPoints(yTrue, rt))
	if err != nil {
		return nil, errors.Wrap(err, "building true-value line")
	}
	predLine, err := plotter.NewLine(columnPoints(yPred, rp))
	if err != nil {
		return nil, errors.Wrap(err, "building predicted-value line")
	}
	predLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(trueLine, predLine)
	p.Legend.Add("true", trueLine)
	p.Legend.Add("predicted", predLine)

	return &ForecastPlot{p: p}, nil
}

// Save writes the plot to path. The format follows the file extension
// (.png, .svg, .pdf).
func (f *ForecastPlot) Save(width, height vg.Length, path string) error {
	if err := f.p.Save(width, height, path); err != nil {
		return errors.Wrap(err, "saving forecast plot")
	}
	return nil
}

func columnPoints(m mat.Matrix, n int) plotter.XYs {
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i].X = float64(i)
		pts[i].Y = m.At(i, 0)
	}
	return pts
}

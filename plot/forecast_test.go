package plot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"
)

func TestForecastPlotSave(t *testing.T) {
	n := 50
	yTrue := mat.NewDense(n, 1, nil)
	yPred := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		v := math.Sin(float64(i) / 5)
		yTrue.Set(i, 0, v)
		yPred.Set(i, 0, v+0.05)
	}

	fp, err := NewForecastPlot("sine forecast", yTrue, yPred)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "forecast.png")
	if err := fp.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestForecastPlotValidation(t *testing.T) {
	col := mat.NewDense(3, 1, []float64{1, 2, 3})

	if _, err := NewForecastPlot("t", col, mat.NewDense(2, 1, nil)); err == nil {
		t.Error("length mismatch accepted")
	}
	if _, err := NewForecastPlot("t", mat.NewDense(3, 2, nil), col); err == nil {
		t.Error("non-column input accepted")
	}
	if _, err := NewForecastPlot("t", &mat.Dense{}, &mat.Dense{}); err == nil {
		t.Error("empty input accepted")
	}
}

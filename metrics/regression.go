// Package metrics provides regression evaluation metrics over gonum vectors.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/convforge/convcast/pkg/errors"
)

// MSE computes the mean squared error between true and predicted values.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MAE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MAE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}

// R2Score computes the coefficient of determination R².
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("R2Score", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("R2Score", n, yPred.Len(), 0)
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		yTrueVal := yTrue.AtVec(i)
		yPredVal := yPred.AtVec(i)
		tss += (yTrueVal - yMean) * (yTrueVal - yMean)
		rss += (yTrueVal - yPredVal) * (yTrueVal - yPredVal)
	}

	if tss == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}
	return 1 - rss/tss, nil
}

// asColumnVec validates that m is an n×1 matrix and converts it to a vector.
func asColumnVec(op string, m mat.Matrix) (*mat.VecDense, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError(op, "empty matrix")
	}
	if c != 1 {
		return nil, errors.NewValueError(op, "must be a column vector (n×1 matrix)")
	}
	v := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		v.SetVec(i, m.At(i, 0))
	}
	return v, nil
}

// MSEMatrix computes MSE for n×1 matrix inputs, as returned by Predict.
func MSEMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	tv, err := asColumnVec("MSEMatrix", yTrue)
	if err != nil {
		return 0, err
	}
	pv, err := asColumnVec("MSEMatrix", yPred)
	if err != nil {
		return 0, err
	}
	return MSE(tv, pv)
}

// R2ScoreMatrix computes R² for n×1 matrix inputs.
func R2ScoreMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	tv, err := asColumnVec("R2ScoreMatrix", yTrue)
	if err != nil {
		return 0, err
	}
	pv, err := asColumnVec("R2ScoreMatrix", yPred)
	if err != nil {
		return 0, err
	}
	return R2Score(tv, pv)
}

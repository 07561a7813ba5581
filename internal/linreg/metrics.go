package linreg

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/lumen-ml/lumen/internal/parallel"
)

// MSE returns the mean squared error of the model over the dataset.
// x and y must have the same length; empty input returns 0 by
// convention rather than failing.
func (m *Model) MSE(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("%w: x and y must have the same length (%d != %d)", ErrInvalidArgument, len(xs), len(ys))
	}
	return m.mse(xs, ys), nil
}

func (m *Model) mse(xs, ys []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := parallel.Sum(len(xs), m.par, func(i int) float64 {
		d := m.slope*xs[i] + m.intercept - ys[i]
		return d * d
	})
	return sum / float64(len(xs))
}

// RSquared returns the coefficient of determination 1 - RSS/TSS over
// the dataset. x and y must have the same non-empty length.
//
// Constant y is not guarded: TSS is zero and the IEEE result of the
// division surfaces directly (NaN for a perfect fit, -Inf otherwise).
func (m *Model) RSquared(xs, ys []float64) (float64, error) {
	if err := checkXY(xs, ys); err != nil {
		return 0, err
	}

	estimates := make([]float64, len(xs))
	parallel.For(len(xs), m.par, func(i int) {
		estimates[i] = m.Predict(xs[i])
	})
	return stat.RSquaredFrom(estimates, ys, nil), nil
}

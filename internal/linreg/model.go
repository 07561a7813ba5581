// Package linreg implements simple linear regression over
// one-dimensional data, fit either by the closed-form least-squares
// solution or by mini-batch gradient descent with early stopping.
package linreg

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/lumen-ml/lumen/internal/parallel"
)

// ErrInvalidArgument reports mismatched, empty, or malformed input.
var ErrInvalidArgument = errors.New("linreg: invalid argument")

// A slope denominator below this is treated as zero variance in x.
const degenerateVariance = 1e-10

// Config holds the hyperparameters for gradient-descent fitting.
// Zero-valued fields fall back to the defaults in New.
type Config struct {
	LearningRate float64 // step size for gradient updates (default 0.01)
	MaxIter      int     // maximum number of epochs (default 1000)
	BatchSize    int     // samples per mini-batch (default 32)
	Tolerance    float64 // relative improvement required to reset the stall counter (default 1e-6)
	Patience     int     // epochs without improvement before stopping (default 5)
	Seed         uint64  // RNG seed for shuffling; 0 seeds from the clock
}

// Model fits y = slope*x + intercept to one-dimensional data.
//
// Both parameters are zero until a fit call completes. Fit performs
// mini-batch gradient descent; FitAnalytical solves the normal
// equations directly and is the preferred path for this 1-D case.
type Model struct {
	slope     float64
	intercept float64

	cfg Config
	rng *rand.Rand
	par parallel.Config
}

// New creates a model with the given configuration. Zero-valued
// fields fall back to the package defaults.
func New(cfg Config) *Model {
	if cfg.LearningRate == 0 {
		cfg.LearningRate = 0.01
	}
	if cfg.MaxIter == 0 {
		cfg.MaxIter = 1000
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 32
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = 1e-6
	}
	if cfg.Patience == 0 {
		cfg.Patience = 5
	}
	return &Model{
		cfg: cfg,
		rng: newRand(cfg.Seed),
		par: parallel.Default(),
	}
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Slope returns the fitted slope.
func (m *Model) Slope() float64 { return m.slope }

// Intercept returns the fitted intercept.
func (m *Model) Intercept() float64 { return m.intercept }

// Predict returns slope*x + intercept.
func (m *Model) Predict(x float64) float64 {
	return m.slope*x + m.intercept
}

func checkXY(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: x and y must have the same length (%d != %d)", ErrInvalidArgument, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return fmt.Errorf("%w: input vectors cannot be empty", ErrInvalidArgument)
	}
	return nil
}

// FitAnalytical solves the 1-D least-squares problem in closed form:
//
//	slope = Σ(xᵢ-x̄)(yᵢ-ȳ) / Σ(xᵢ-x̄)²
//	intercept = ȳ - slope*x̄
//
// When x has (near) zero variance the slope is forced to zero instead
// of dividing by a vanishing denominator.
func (m *Model) FitAnalytical(xs, ys []float64) error {
	if err := checkXY(xs, ys); err != nil {
		return err
	}

	meanX := stat.Mean(xs, nil)
	meanY := stat.Mean(ys, nil)

	numerator := parallel.Sum(len(xs), m.par, func(i int) float64 {
		return (xs[i] - meanX) * (ys[i] - meanY)
	})
	denominator := parallel.Sum(len(xs), m.par, func(i int) float64 {
		d := xs[i] - meanX
		return d * d
	})

	if math.Abs(denominator) < degenerateVariance {
		m.slope = 0
	} else {
		m.slope = numerator / denominator
	}
	m.intercept = meanY - m.slope*meanX
	return nil
}

// Fit trains the model with mini-batch gradient descent.
//
// Each epoch shuffles the sample indices, walks them in contiguous
// mini-batches (the last batch may be short), and updates slope and
// intercept by the learning rate times the batch-mean gradient of the
// squared error. Training stops after MaxIter epochs, or earlier once
// the full-dataset MSE has gone Patience consecutive epochs without
// improving on the best seen by more than Tolerance*max(1, best).
//
// Early stopping is a success path: the model is left in its last
// valid state.
func (m *Model) Fit(xs, ys []float64) error {
	if err := checkXY(xs, ys); err != nil {
		return err
	}
	if m.cfg.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidArgument, m.cfg.BatchSize)
	}

	n := len(xs)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	bestMSE := math.Inf(1)
	stall := 0

	for iter := 0; iter < m.cfg.MaxIter; iter++ {
		m.rng.Shuffle(n, func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		for start := 0; start < n; start += m.cfg.BatchSize {
			end := min(start+m.cfg.BatchSize, n)
			batch := indices[start:end]

			slopeGrad := parallel.Sum(len(batch), m.par, func(i int) float64 {
				idx := batch[i]
				err := m.slope*xs[idx] + m.intercept - ys[idx]
				return err * xs[idx]
			})
			interceptGrad := parallel.Sum(len(batch), m.par, func(i int) float64 {
				idx := batch[i]
				return m.slope*xs[idx] + m.intercept - ys[idx]
			})

			scale := 1.0 / float64(len(batch))
			m.slope -= m.cfg.LearningRate * slopeGrad * scale
			m.intercept -= m.cfg.LearningRate * interceptGrad * scale
		}

		epochMSE := m.mse(xs, ys)
		improvement := bestMSE - epochMSE
		threshold := m.cfg.Tolerance * math.Max(1, bestMSE)

		if math.IsInf(bestMSE, 1) || improvement > threshold {
			bestMSE = epochMSE
			stall = 0
		} else {
			stall++
			if stall >= m.cfg.Patience {
				break
			}
		}
	}
	return nil
}

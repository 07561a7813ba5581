// Package neural implements a fully connected feedforward network
// with sigmoid hidden activations and a linear output layer, trained
// by per-sample backpropagation (stochastic gradient descent).
package neural

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidArgument reports mismatched, empty, or malformed input.
var ErrInvalidArgument = errors.New("neural: invalid argument")

// Config holds the training hyperparameters for a network.
// Zero-valued fields fall back to the defaults in New.
type Config struct {
	LearningRate float64 // step size for gradient updates (default 0.01)
	Seed         uint64  // RNG seed for init and shuffling; 0 seeds from the clock
}

// Network is a fully connected feedforward network.
//
// sizes[0] is the input width, sizes[len-1] the output width, and the
// rest are hidden widths. weights[i] has dimensions
// sizes[i+1] x sizes[i] and biases[i] has length sizes[i+1]; both are
// mutated only by the backpropagation update step.
type Network struct {
	sizes   []int
	weights []*mat.Dense
	biases  []*mat.VecDense
	lr      float64
	rng     *rand.Rand
}

// New creates a network with the given layer sizes. There must be at
// least an input and an output layer, and every size must be
// positive.
//
// Weights start at U(-0.5, 0.5)*sqrt(1/fanIn) and biases at
// U(0, 0.1), a simple variance-scaled random init.
func New(sizes []int, cfg Config) (*Network, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("%w: network needs at least an input and an output layer, got %d sizes", ErrInvalidArgument, len(sizes))
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("%w: layer sizes must be positive, got %d", ErrInvalidArgument, s)
		}
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = 0.01
	}

	n := &Network{
		sizes: append([]int(nil), sizes...),
		lr:    cfg.LearningRate,
		rng:   newRand(cfg.Seed),
	}
	n.initParameters()
	return n, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (n *Network) initParameters() {
	transitions := len(n.sizes) - 1
	n.weights = make([]*mat.Dense, transitions)
	n.biases = make([]*mat.VecDense, transitions)

	for i := 0; i < transitions; i++ {
		rows, cols := n.sizes[i+1], n.sizes[i]
		scale := math.Sqrt(1.0 / float64(cols))

		w := mat.NewDense(rows, cols, nil)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				w.Set(r, c, (n.rng.Float64()-0.5)*scale)
			}
		}
		n.weights[i] = w

		b := mat.NewVecDense(rows, nil)
		for r := 0; r < rows; r++ {
			b.SetVec(r, n.rng.Float64()*0.1)
		}
		n.biases[i] = b
	}
}

// Sizes returns a copy of the layer sizes.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

func (n *Network) checkInput(in []float64) error {
	if len(in) != n.sizes[0] {
		return fmt.Errorf("%w: input size %d does not match input layer size %d", ErrInvalidArgument, len(in), n.sizes[0])
	}
	return nil
}

// Predict runs the forward math without retaining any intermediate
// state, so repeated calls with the same input return the same output
// and never disturb training.
func (n *Network) Predict(in []float64) ([]float64, error) {
	if err := n.checkInput(in); err != nil {
		return nil, err
	}

	a := mat.NewVecDense(len(in), append([]float64(nil), in...))
	for i, w := range n.weights {
		z := mat.NewVecDense(n.sizes[i+1], nil)
		z.MulVec(w, a)
		z.AddVec(z, n.biases[i])
		if i < len(n.weights)-1 {
			for j := 0; j < z.Len(); j++ {
				z.SetVec(j, sigmoid(z.AtVec(j)))
			}
		}
		a = z
	}

	out := make([]float64, a.Len())
	for i := range out {
		out[i] = a.AtVec(i)
	}
	return out, nil
}

package neural

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// trace captures the intermediate state of one forward pass. It is
// produced by forward and consumed immediately by backward on the
// same input; it is never valid across another forward call.
type trace struct {
	activations []*mat.VecDense // one per layer; activations[0] is the input
	preacts     []*mat.VecDense // weighted sums per transition, before activation
}

func (tr *trace) output() *mat.VecDense {
	return tr.activations[len(tr.activations)-1]
}

// forward computes z = W*a + b for every transition, applying sigmoid
// on all but the last transition and identity on the last, and
// records every z and activation for the backward step.
func (n *Network) forward(in []float64) *trace {
	tr := &trace{
		activations: make([]*mat.VecDense, len(n.sizes)),
		preacts:     make([]*mat.VecDense, len(n.sizes)-1),
	}
	tr.activations[0] = mat.NewVecDense(len(in), append([]float64(nil), in...))

	for i, w := range n.weights {
		z := mat.NewVecDense(n.sizes[i+1], nil)
		z.MulVec(w, tr.activations[i])
		z.AddVec(z, n.biases[i])
		tr.preacts[i] = z

		a := mat.NewVecDense(z.Len(), nil)
		if i < len(n.weights)-1 {
			for j := 0; j < z.Len(); j++ {
				a.SetVec(j, sigmoid(z.AtVec(j)))
			}
		} else {
			a.CopyVec(z)
		}
		tr.activations[i+1] = a
	}
	return tr
}

// Train runs one stochastic gradient descent step on a single sample:
// a forward pass followed by backpropagation of the mean-squared
// error. Input and target widths are validated before any state is
// touched.
func (n *Network) Train(in, target []float64) error {
	if err := n.checkInput(in); err != nil {
		return err
	}
	if want := n.sizes[len(n.sizes)-1]; len(target) != want {
		return fmt.Errorf("%w: target size %d does not match output layer size %d", ErrInvalidArgument, len(target), want)
	}

	tr := n.forward(in)
	n.backward(tr, target)
	return nil
}

// backward propagates deltas from the output layer to the first
// hidden layer and applies the vanilla SGD update.
//
// The output activation is linear, so the output delta is exactly
// predicted - target. Hidden deltas are (Wᵀ·delta)⊙s'(z) on the
// layer's own stored pre-activation z.
func (n *Network) backward(tr *trace, target []float64) {
	last := len(n.weights) - 1
	deltas := make([]*mat.VecDense, len(n.weights))

	d := mat.NewVecDense(n.sizes[len(n.sizes)-1], nil)
	d.SubVec(tr.output(), mat.NewVecDense(len(target), target))
	deltas[last] = d

	for i := last - 1; i >= 0; i-- {
		propagated := mat.NewVecDense(n.sizes[i+1], nil)
		propagated.MulVec(n.weights[i+1].T(), deltas[i+1])

		z := tr.preacts[i]
		for j := 0; j < propagated.Len(); j++ {
			propagated.SetVec(j, propagated.AtVec(j)*sigmoidPrime(z.AtVec(j)))
		}
		deltas[i] = propagated
	}

	for i, delta := range deltas {
		// grad_W = delta ⊗ prevActivation, grad_b = delta.
		grad := mat.NewDense(n.sizes[i+1], n.sizes[i], nil)
		grad.Outer(n.lr, delta, tr.activations[i])
		n.weights[i].Sub(n.weights[i], grad)
		n.biases[i].AddScaledVec(n.biases[i], -n.lr, delta)
	}
}

package neural

import "fmt"

// Report is one progress observation emitted during TrainEpochs.
type Report struct {
	Epoch int
	MSE   float64
}

// EpochOptions controls the multi-epoch training loop.
type EpochOptions struct {
	// ReportEvery is the loss-reporting cadence in epochs
	// (default 10). The final epoch always reports.
	ReportEvery int

	// OnReport receives each observation as soon as it is computed,
	// so a caller can stream a live loss curve. Nil disables
	// reporting.
	OnReport func(Report)
}

// TrainEpochs trains the network over the dataset for the given
// number of epochs and returns one prediction per input, in the
// original input order.
//
// Each epoch shuffles the sample indices and runs one Train call per
// sample in shuffled order. Every ReportEvery epochs, and always on
// the final epoch, the mean squared error over the whole dataset is
// computed with Predict and handed to OnReport.
func (n *Network) TrainEpochs(inputs, targets [][]float64, epochs int, opts EpochOptions) ([]float64, error) {
	if len(inputs) == 0 || len(inputs) != len(targets) {
		return nil, fmt.Errorf("%w: input and target datasets must be non-empty and share a length (%d inputs, %d targets)",
			ErrInvalidArgument, len(inputs), len(targets))
	}
	if opts.ReportEvery <= 0 {
		opts.ReportEvery = 10
	}

	indices := make([]int, len(inputs))
	for i := range indices {
		indices[i] = i
	}

	for epoch := 1; epoch <= epochs; epoch++ {
		n.rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
		for _, s := range indices {
			if err := n.Train(inputs[s], targets[s]); err != nil {
				return nil, err
			}
		}

		if epoch%opts.ReportEvery == 0 || epoch == epochs {
			mse, err := n.datasetMSE(inputs, targets)
			if err != nil {
				return nil, err
			}
			if opts.OnReport != nil {
				opts.OnReport(Report{Epoch: epoch, MSE: mse})
			}
		}
	}

	predictions := make([]float64, len(inputs))
	for i, in := range inputs {
		out, err := n.Predict(in)
		if err != nil {
			return nil, err
		}
		predictions[i] = out[0]
	}
	return predictions, nil
}

// datasetMSE averages the per-sample MSE over the whole dataset using
// Predict, which leaves training state untouched.
func (n *Network) datasetMSE(inputs, targets [][]float64) (float64, error) {
	var total float64
	for i, in := range inputs {
		out, err := n.Predict(in)
		if err != nil {
			return 0, err
		}
		sampleMSE, err := MeanSquaredError(out, targets[i])
		if err != nil {
			return 0, err
		}
		total += sampleMSE
	}
	return total / float64(len(inputs)), nil
}

// MeanSquaredError returns the mean squared error between two
// equal-length vectors.
func MeanSquaredError(predicted, target []float64) (float64, error) {
	if len(predicted) != len(target) {
		return 0, fmt.Errorf("%w: predicted and target must have the same length (%d != %d)", ErrInvalidArgument, len(predicted), len(target))
	}
	var sum float64
	for i := range predicted {
		d := predicted[i] - target[i]
		sum += d * d
	}
	return sum / float64(len(predicted)), nil
}

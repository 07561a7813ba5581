package neural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalarDataset(xs, ys []float64) (inputs, targets [][]float64) {
	inputs = make([][]float64, len(xs))
	targets = make([][]float64, len(ys))
	for i := range xs {
		inputs[i] = []float64{xs[i]}
	}
	for i := range ys {
		targets[i] = []float64{ys[i]}
	}
	return inputs, targets
}

func TestTrainEpochs_Validation(t *testing.T) {
	n, err := New([]int{1, 2, 1}, Config{Seed: 1})
	require.NoError(t, err)

	_, err = n.TrainEpochs(nil, nil, 10, EpochOptions{})
	require.ErrorIs(t, err, ErrInvalidArgument)

	inputs, targets := scalarDataset([]float64{1, 2}, []float64{1})
	_, err = n.TrainEpochs(inputs, targets[:1], 10, EpochOptions{})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTrainEpochs_PredictionContract(t *testing.T) {
	n, err := New([]int{1, 3, 1}, Config{LearningRate: 0.05, Seed: 11})
	require.NoError(t, err)

	inputs, targets := scalarDataset(
		[]float64{0, 0.25, 0.5, 0.75, 1},
		[]float64{0.2, 0.3, 0.4, 0.5, 0.6},
	)

	preds, err := n.TrainEpochs(inputs, targets, 3, EpochOptions{})
	require.NoError(t, err)
	require.Len(t, preds, len(inputs))

	// Predictions follow the original input order regardless of the
	// internal shuffling: each entry must equal a fresh Predict on
	// the same input.
	for i, in := range inputs {
		out, err := n.Predict(in)
		require.NoError(t, err)
		assert.Equal(t, out[0], preds[i], "prediction %d out of order", i)
	}
}

func TestTrainEpochs_ReportCadence(t *testing.T) {
	n, err := New([]int{1, 2, 1}, Config{LearningRate: 0.01, Seed: 5})
	require.NoError(t, err)

	inputs, targets := scalarDataset([]float64{0, 1}, []float64{0, 1})

	var epochs []int
	_, err = n.TrainEpochs(inputs, targets, 25, EpochOptions{
		ReportEvery: 10,
		OnReport: func(r Report) {
			epochs = append(epochs, r.Epoch)
			assert.GreaterOrEqual(t, r.MSE, 0.0)
		},
	})
	require.NoError(t, err)

	// Every 10th epoch, plus the final epoch unconditionally.
	assert.Equal(t, []int{10, 20, 25}, epochs)
}

func TestTrainEpochs_DefaultCadence(t *testing.T) {
	n, err := New([]int{1, 2, 1}, Config{Seed: 5})
	require.NoError(t, err)

	inputs, targets := scalarDataset([]float64{0, 1}, []float64{0, 1})

	var epochs []int
	_, err = n.TrainEpochs(inputs, targets, 20, EpochOptions{
		OnReport: func(r Report) { epochs = append(epochs, r.Epoch) },
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, epochs)
}

func TestTrainEpochs_LearnsLinearFunction(t *testing.T) {
	n, err := New([]int{1, 3, 1}, Config{LearningRate: 0.05, Seed: 42})
	require.NoError(t, err)

	inputs, targets := scalarDataset(
		[]float64{0, 0.25, 0.5, 0.75, 1},
		[]float64{0.2, 0.325, 0.45, 0.575, 0.7},
	)

	var lastMSE float64
	_, err = n.TrainEpochs(inputs, targets, 2000, EpochOptions{
		ReportEvery: 100,
		OnReport:    func(r Report) { lastMSE = r.MSE },
	})
	require.NoError(t, err)
	assert.Less(t, lastMSE, 0.01, "network failed to fit a small linear dataset")
}

func TestMeanSquaredError(t *testing.T) {
	mse, err := MeanSquaredError([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, mse)

	mse, err = MeanSquaredError([]float64{2, 4}, []float64{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, mse, 1e-12)

	_, err = MeanSquaredError([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

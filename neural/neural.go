// Copyright 2025 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package neural

import "github.com/lumen-ml/lumen/internal/neural"

// Network is a fully connected feedforward network with sigmoid
// hidden activations and a linear output layer.
type Network = neural.Network

// Config holds the training hyperparameters for a network.
type Config = neural.Config

// Report is one progress observation emitted during TrainEpochs.
type Report = neural.Report

// EpochOptions controls the multi-epoch training loop.
type EpochOptions = neural.EpochOptions

// ErrInvalidArgument reports mismatched, empty, or malformed input.
var ErrInvalidArgument = neural.ErrInvalidArgument

// New creates a network with the given layer sizes and configuration.
//
// sizes must hold at least an input and an output width, all
// positive. Weights and biases are randomly initialized; a fixed
// Config.Seed makes the initialization and shuffling reproducible.
//
// Example:
//
//	net, err := neural.New([]int{1, 4, 1}, neural.Config{LearningRate: 0.05})
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(sizes []int, cfg Config) (*Network, error) {
	return neural.New(sizes, cfg)
}

// MeanSquaredError returns the mean squared error between two
// equal-length vectors.
func MeanSquaredError(predicted, target []float64) (float64, error) {
	return neural.MeanSquaredError(predicted, target)
}

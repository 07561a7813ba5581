// Copyright 2025 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package neural provides a small fully connected feedforward network
// trained by backpropagation with stochastic gradient descent.
//
// # Overview
//
// A Network is built from an ordered list of layer widths. Hidden
// layers use the sigmoid activation; the output layer is linear, so
// the network regresses real values directly.
//
// Training is per-sample SGD: Train runs one forward/backward pass,
// TrainEpochs drives the whole dataset for many epochs with
// shuffling, periodic loss reporting, and a final prediction per
// input.
//
// # Basic Usage
//
//	net, err := neural.New([]int{1, 4, 1}, neural.Config{
//	    LearningRate: 0.05,
//	    Seed:         42,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	predictions, err := net.TrainEpochs(inputs, targets, 1000, neural.EpochOptions{
//	    OnReport: func(r neural.Report) {
//	        fmt.Printf("epoch=%d,mse=%g\n", r.Epoch, r.MSE)
//	    },
//	})
//
// # Prediction
//
// Predict runs the forward math without touching training state, so
// it is safe to call repeatedly between training steps:
//
//	out, err := net.Predict([]float64{0.5})
package neural

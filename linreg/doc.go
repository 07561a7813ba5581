// Copyright 2025 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linreg provides simple linear regression over paired
// one-dimensional samples.
//
// # Overview
//
// A Model can be fit two ways:
//   - FitAnalytical: closed-form least squares. Deterministic, O(n),
//     the preferred solver for this 1-D case.
//   - Fit: mini-batch gradient descent with per-epoch shuffling and
//     early stopping, for parity with iterative training pipelines.
//
// Fit quality is read back with MSE and RSquared.
//
// # Basic Usage
//
//	model := linreg.New(linreg.Config{})
//	if err := model.FitAnalytical(xs, ys); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(model.Slope(), model.Intercept())
//	fmt.Println(model.Predict(6))
//
// # Gradient Descent
//
// The iterative path takes its hyperparameters from Config. A fixed
// Seed makes the shuffling reproducible:
//
//	model := linreg.New(linreg.Config{
//	    LearningRate: 0.05,
//	    MaxIter:      2000,
//	    BatchSize:    16,
//	    Seed:         42,
//	})
//	if err := model.Fit(xs, ys); err != nil {
//	    log.Fatal(err)
//	}
//
// Training stops early once the full-dataset MSE has gone Patience
// consecutive epochs without a relative improvement of at least
// Tolerance, trading a little final accuracy for bounded time.
package linreg

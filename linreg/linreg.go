// Copyright 2025 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linreg

import "github.com/lumen-ml/lumen/internal/linreg"

// Model fits y = slope*x + intercept to one-dimensional data.
type Model = linreg.Model

// Config holds the hyperparameters for gradient-descent fitting.
type Config = linreg.Config

// ErrInvalidArgument reports mismatched, empty, or malformed input.
var ErrInvalidArgument = linreg.ErrInvalidArgument

// New creates a model with the given configuration.
//
// Zero-valued fields fall back to the package defaults
// (learning rate 0.01, 1000 iterations, batch size 32,
// tolerance 1e-6, patience 5).
//
// Example:
//
//	model := linreg.New(linreg.Config{})
//	if err := model.FitAnalytical(xs, ys); err != nil {
//	    log.Fatal(err)
//	}
//	y := model.Predict(5)
func New(cfg Config) *Model {
	return linreg.New(cfg)
}

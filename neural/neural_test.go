// Copyright 2025 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package neural_test

import (
	"errors"
	"testing"

	"github.com/lumen-ml/lumen/neural"
)

// TestPublicAPI verifies the exported surface works end to end.
func TestPublicAPI(t *testing.T) {
	net, err := neural.New([]int{1, 3, 1}, neural.Config{LearningRate: 0.05, Seed: 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	inputs := [][]float64{{0}, {0.5}, {1}}
	targets := [][]float64{{0}, {0.5}, {1}}

	var reports int
	preds, err := net.TrainEpochs(inputs, targets, 20, neural.EpochOptions{
		OnReport: func(neural.Report) { reports++ },
	})
	if err != nil {
		t.Fatalf("TrainEpochs failed: %v", err)
	}
	if len(preds) != len(inputs) {
		t.Errorf("got %d predictions, want %d", len(preds), len(inputs))
	}
	if reports != 2 {
		t.Errorf("got %d reports, want 2", reports)
	}
}

// TestInvalidArgumentSentinel verifies the re-exported sentinel
// matches errors produced by the network.
func TestInvalidArgumentSentinel(t *testing.T) {
	_, err := neural.New([]int{1}, neural.Config{})
	if !errors.Is(err, neural.ErrInvalidArgument) {
		t.Errorf("New error = %v, want ErrInvalidArgument", err)
	}

	net, err := neural.New([]int{1, 1}, neural.Config{Seed: 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := net.Predict([]float64{1, 2}); !errors.Is(err, neural.ErrInvalidArgument) {
		t.Errorf("Predict error = %v, want ErrInvalidArgument", err)
	}
}

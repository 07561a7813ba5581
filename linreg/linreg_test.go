// Copyright 2025 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linreg_test

import (
	"testing"

	"github.com/lumen-ml/lumen/linreg"
)

// TestPublicAPI verifies the exported surface works end to end.
func TestPublicAPI(t *testing.T) {
	model := linreg.New(linreg.Config{})

	xs := []float64{1, 2, 3, 4}
	ys := []float64{3, 5, 7, 9}
	if err := model.FitAnalytical(xs, ys); err != nil {
		t.Fatalf("FitAnalytical failed: %v", err)
	}

	if got := model.Predict(5); got < 10.999 || got > 11.001 {
		t.Errorf("Predict(5) = %v, want 11", got)
	}

	r2, err := model.RSquared(xs, ys)
	if err != nil {
		t.Fatalf("RSquared failed: %v", err)
	}
	if r2 < 0.999 {
		t.Errorf("RSquared = %v, want ~1", r2)
	}
}

// TestInvalidArgumentSentinel verifies the re-exported sentinel
// matches errors produced by the model.
func TestInvalidArgumentSentinel(t *testing.T) {
	model := linreg.New(linreg.Config{})

	err := model.FitAnalytical(nil, nil)
	if err == nil {
		t.Fatal("expected an error for empty input")
	}
	if got := model.Slope(); got != 0 {
		t.Errorf("Slope after failed fit = %v, want 0", got)
	}
}

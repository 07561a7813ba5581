// Package main provides the lumen training engine CLI.
//
// The binary is the engine's side of a line-oriented process
// boundary: an external driver writes data vectors to stdin and reads
// key=value result lines from stdout.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/lumen-ml/lumen/internal/linreg"
	"github.com/lumen-ml/lumen/internal/neural"
	"github.com/lumen-ml/lumen/internal/protocol"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "error: operation mode required")
		usage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "lr_train":
		err = runLinearTrain(stdin, stdout)
	case "lr_predict":
		err = runLinearPredict(args[1:], stdout)
	case "nn_train_predict":
		err = runNetworkTrainPredict(args[1:], stdin, stdout)
	default:
		fmt.Fprintf(stderr, "error: unknown operation %q\n", args[0])
		usage(stderr)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		usage(stderr)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  lumen lr_train")
	fmt.Fprintln(w, "    (reads X and y from stdin, one comma-separated line each)")
	fmt.Fprintln(w, "  lumen lr_predict <slope> <intercept> <x>")
	fmt.Fprintln(w, "  lumen nn_train_predict <layers> <learning_rate> <epochs>")
	fmt.Fprintln(w, "    (e.g. lumen nn_train_predict 1-5-1 0.05 1000)")
	fmt.Fprintln(w, "    (reads X and y from stdin, trains, streams epoch=..,mse=.. lines)")
}

// readDataset reads the two data lines (X then y) the driver sends.
func readDataset(stdin io.Reader) (xs, ys []float64, err error) {
	sc := bufio.NewScanner(stdin)
	// Whole datasets arrive as single lines.
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if xs, err = protocol.ReadVector(sc); err != nil {
		return nil, nil, err
	}
	if ys, err = protocol.ReadVector(sc); err != nil {
		return nil, nil, err
	}
	if len(xs) == 0 || len(ys) == 0 {
		return nil, nil, fmt.Errorf("expected two non-empty data lines on stdin")
	}
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("X and y must have the same length (%d != %d)", len(xs), len(ys))
	}
	return xs, ys, nil
}

func runLinearTrain(stdin io.Reader, stdout io.Writer) error {
	xs, ys, err := readDataset(stdin)
	if err != nil {
		return err
	}

	model := linreg.New(linreg.Config{})
	start := time.Now()
	if err := model.FitAnalytical(xs, ys); err != nil {
		return err
	}
	elapsed := time.Since(start)

	mse, err := model.MSE(xs, ys)
	if err != nil {
		return err
	}
	r2, err := model.RSquared(xs, ys)
	if err != nil {
		return err
	}

	_ = protocol.WriteKV(stdout, "slope", protocol.FormatFloat(model.Slope()))
	_ = protocol.WriteKV(stdout, "intercept", protocol.FormatFloat(model.Intercept()))
	_ = protocol.WriteKV(stdout, "training_time_ms", protocol.FormatFloat(elapsed.Seconds()*1000))
	_ = protocol.WriteKV(stdout, "mse", protocol.FormatFloat(mse))
	_ = protocol.WriteKV(stdout, "r_squared", protocol.FormatFloat(r2))
	return nil
}

func runLinearPredict(args []string, stdout io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("lr_predict needs <slope> <intercept> <x>")
	}
	slope, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid slope %q", args[0])
	}
	intercept, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid intercept %q", args[1])
	}
	x, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid x value %q", args[2])
	}

	return protocol.WriteKV(stdout, "prediction", protocol.FormatFloat(slope*x+intercept))
}

func runNetworkTrainPredict(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("nn_train_predict needs <layers> <learning_rate> <epochs>")
	}

	sizes, err := protocol.ParseLayerSizes(args[0])
	if err != nil {
		return err
	}
	learningRate, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid learning rate %q", args[1])
	}
	epochs, err := strconv.Atoi(args[2])
	if err != nil || epochs <= 0 {
		return fmt.Errorf("epochs must be a positive integer, got %q", args[2])
	}
	// The serving path feeds scalar samples.
	if sizes[0] != 1 || sizes[len(sizes)-1] != 1 {
		return fmt.Errorf("layer structure %q must have one input and one output neuron", args[0])
	}

	xs, ys, err := readDataset(stdin)
	if err != nil {
		return err
	}
	inputs := make([][]float64, len(xs))
	targets := make([][]float64, len(ys))
	for i := range xs {
		inputs[i] = []float64{xs[i]}
		targets[i] = []float64{ys[i]}
	}

	net, err := neural.New(sizes, neural.Config{LearningRate: learningRate})
	if err != nil {
		return err
	}

	start := time.Now()
	predictions, err := net.TrainEpochs(inputs, targets, epochs, neural.EpochOptions{
		OnReport: func(r neural.Report) {
			fmt.Fprintf(stdout, "epoch=%d,mse=%s\n", r.Epoch, protocol.FormatFloat(r.MSE))
		},
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	finalMSE, err := neural.MeanSquaredError(predictions, ys)
	if err != nil {
		return err
	}

	_ = protocol.WriteKV(stdout, "training_time_ms", protocol.FormatFloat(elapsed.Seconds()*1000))
	_ = protocol.WriteKV(stdout, "final_mse", protocol.FormatFloat(finalMSE))
	_ = protocol.WriteKV(stdout, "nn_predictions", protocol.JoinVector(predictions))
	return nil
}

// Package protocol implements the line-oriented text boundary the
// engine shares with its external driver: comma-separated float
// vectors and hyphen-delimited layer sizes in, key=value lines out.
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidArgument reports malformed protocol input.
var ErrInvalidArgument = errors.New("protocol: invalid argument")

// ParseVector parses a comma-separated list of real numbers. NaN and
// infinities are rejected; an all-whitespace string parses to nil.
func ParseVector(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: invalid numeric value %q", ErrInvalidArgument, strings.TrimSpace(p))
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseLayerSizes parses a hyphen-delimited layer-size string such as
// "1-4-1". Every segment must be a positive integer; blank segments
// are skipped. At least an input and an output layer are required.
func ParseLayerSizes(s string) ([]int, error) {
	var out []int
	for _, p := range strings.Split(s, "-") {
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%w: invalid layer size %q", ErrInvalidArgument, p)
		}
		out = append(out, v)
	}
	if len(out) < 2 {
		return nil, fmt.Errorf("%w: layer structure %q needs at least an input and an output layer", ErrInvalidArgument, s)
	}
	return out, nil
}

// ReadVector reads the next line from the scanner and parses it as a
// vector. At end of input it returns nil with no error, mirroring an
// empty line.
func ReadVector(sc *bufio.Scanner) ([]float64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return ParseVector(sc.Text())
}

// FormatFloat renders a float at full double precision, the shortest
// representation that round-trips exactly.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// JoinVector renders a vector as a comma-separated list at full
// precision.
func JoinVector(vs []float64) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(FormatFloat(v))
	}
	return b.String()
}

// WriteKV writes one key=value protocol line.
func WriteKV(w io.Writer, key, value string) error {
	_, err := fmt.Fprintf(w, "%s=%s\n", key, value)
	return err
}

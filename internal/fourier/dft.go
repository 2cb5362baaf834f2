package fourier

import (
	"errors"
	"math"
)

// ErrEmptySignal is returned when a transform is asked for zero samples.
var ErrEmptySignal = errors.New("fourier: empty signal")

// DFT computes the discrete Fourier transform of signal, scaled by 1/N.
// Bin k holds
//
//	C(k) = 1/N · Σ x[n]·e^(−i·2π·k·n/N)
//
// for k in [0, N). Evaluation is direct, O(N²).
func DFT(signal []Complex) ([]Complex, error) {
	n := len(signal)
	if n == 0 {
		return nil, ErrEmptySignal
	}

	bins := make([]Complex, n)
	scale := 1 / float64(n)
	for k := range n {
		var ck Complex
		for i, x := range signal {
			theta := -float64(k) / float64(n) * 2 * math.Pi * float64(i)
			sin, cos := math.Sincos(theta)
			ck = ck.Add(x.Mult(Complex{Re: cos, Im: sin}))
		}
		bins[k] = ck.Scale(scale)
	}
	return bins, nil
}

// DFTPoints transforms a path, mapping x+iy to each sample.
func DFTPoints(path []Point) ([]Complex, error) {
	return DFT(Samples(path))
}

// InverseDFT reverses DFT: x[n] = Σ C(k)·e^(i·2π·k·n/N).
func InverseDFT(bins []Complex) ([]Complex, error) {
	n := len(bins)
	if n == 0 {
		return nil, ErrEmptySignal
	}

	out := make([]Complex, n)
	for i := range n {
		var x Complex
		for k, c := range bins {
			theta := float64(k) / float64(n) * 2 * math.Pi * float64(i)
			sin, cos := math.Sincos(theta)
			x = x.Add(c.Mult(Complex{Re: cos, Im: sin}))
		}
		out[i] = x
	}
	return out, nil
}

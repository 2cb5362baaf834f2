package fourier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tolerance = 1e-9

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx() cmp.Option {
	return cmpopts.EquateApprox(0, tolerance)
}

func squareWave() []Complex {
	signal := make([]Complex, 0, 200)
	for range 100 {
		signal = append(signal, Cx(0, -50))
	}
	for range 100 {
		signal = append(signal, Cx(0, 50))
	}
	return signal
}

func approxWithin(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

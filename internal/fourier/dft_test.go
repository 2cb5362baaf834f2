package fourier

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestDFTEmptySignal(t *testing.T) {
	if _, err := DFT(nil); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("DFT(nil) error = %v, want ErrEmptySignal", err)
	}
	if _, err := InverseDFT([]Complex{}); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("InverseDFT(empty) error = %v, want ErrEmptySignal", err)
	}
}

func TestDFTSingleSample(t *testing.T) {
	bins, err := DFT([]Complex{Cx(3, 4)})
	if err != nil {
		t.Fatalf("DFT() error = %v", err)
	}
	diff(t, []Complex{Cx(3, 4)}, bins)
}

func TestDFTConstantSignal(t *testing.T) {
	signal := []Complex{Cx(2, -1), Cx(2, -1), Cx(2, -1), Cx(2, -1)}
	bins, err := DFT(signal)
	if err != nil {
		t.Fatalf("DFT() error = %v", err)
	}
	diff(t, []Complex{Cx(2, -1), {}, {}, {}}, bins, approx())
}

func TestDFTPureTone(t *testing.T) {
	// x[n] = e^(i·2π·3n/8) has all its energy in bin 3.
	const n = 8
	signal := make([]Complex, n)
	for i := range n {
		signal[i] = Polar(1, 2*math.Pi*3*float64(i)/n)
	}
	bins, err := DFT(signal)
	if err != nil {
		t.Fatalf("DFT() error = %v", err)
	}
	want := make([]Complex, n)
	want[3] = Cx(1, 0)
	diff(t, want, bins, approx())
}

func TestDFTLinearity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 33
	x := make([]Complex, n)
	y := make([]Complex, n)
	for i := range n {
		x[i] = Cx(rng.Float64()*200-100, rng.Float64()*200-100)
		y[i] = Cx(rng.Float64()*200-100, rng.Float64()*200-100)
	}
	const a, b = 2.5, -0.75

	mixed := make([]Complex, n)
	for i := range n {
		mixed[i] = x[i].Scale(a).Add(y[i].Scale(b))
	}

	dx, err := DFT(x)
	if err != nil {
		t.Fatal(err)
	}
	dy, err := DFT(y)
	if err != nil {
		t.Fatal(err)
	}
	dm, err := DFT(mixed)
	if err != nil {
		t.Fatal(err)
	}

	want := make([]Complex, n)
	for k := range n {
		want[k] = dx[k].Scale(a).Add(dy[k].Scale(b))
	}
	diff(t, want, dm, approx())
}

func TestInverseDFTRoundTrip(t *testing.T) {
	signal := squareWave()
	bins, err := DFT(signal)
	if err != nil {
		t.Fatal(err)
	}
	back, err := InverseDFT(bins)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, signal, back, approxWithin(1e-8))
}

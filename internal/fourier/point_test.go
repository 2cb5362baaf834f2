package fourier

import (
	"math"
	"testing"
)

func TestComplexArithmetic(t *testing.T) {
	a := Cx(1, 2)
	b := Cx(3, -4)

	diff(t, Cx(4, -2), a.Add(b))
	diff(t, Cx(-2, 6), a.Sub(b))
	// (1+2i)(3−4i) = 3 − 4i + 6i + 8 = 11 + 2i
	diff(t, Cx(11, 2), a.Mult(b))
	diff(t, Cx(2.5, 5), a.Scale(2.5))

	// operands are values; nothing above may have touched them
	diff(t, Cx(1, 2), a)
	diff(t, Cx(3, -4), b)
}

func TestPointAddDoesNotMutate(t *testing.T) {
	p := Pt(1, 1)
	q := p.Add(Pt(2, 3))
	diff(t, Pt(1, 1), p)
	diff(t, Pt(3, 4), q)
}

func TestConversionRoundTrip(t *testing.T) {
	p := Pt(-7.25, 1e-300)
	diff(t, p, p.Complex().Point())
	diff(t, Cx(-7.25, 1e-300), p.Complex())
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name string
		c    Complex
		eps  float64
		want bool
	}{
		{"origin", Cx(0, 0), 0, true},
		{"below default", Cx(3e-6, 4e-6), 0, true},
		{"magnitude at default", Cx(0, DefaultEpsilon), 0, false},
		{"custom eps", Cx(0.5, 0), 1, true},
		{"large", Cx(0, -50), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsZero(tt.eps); got != tt.want {
				t.Errorf("%v.IsZero(%g) = %v, want %v", tt.c, tt.eps, got, tt.want)
			}
		})
	}
}

func TestPolarAndArg(t *testing.T) {
	c := Polar(2, math.Pi/2)
	diff(t, Cx(0, 2), c, approx())
	if got := Cx(-1, 0).Arg(); got != math.Pi {
		t.Errorf("Arg(-1) = %v, want π", got)
	}
	if got := Cx(-1, math.Copysign(0, -1)).Arg(); got != math.Pi {
		t.Errorf("Arg(-1-0i) = %v, want π", got)
	}
	if got := Cx(3, 4).Abs(); got != 5 {
		t.Errorf("Abs(3+4i) = %v, want 5", got)
	}
}

func TestAxisSamples(t *testing.T) {
	path := []Point{Pt(1, 2), Pt(3, 4)}
	diff(t, []Complex{Cx(1, 2), Cx(3, 4)}, Samples(path))
	diff(t, []Complex{Cx(1, 0), Cx(3, 0)}, SamplesX(path))
	diff(t, []Complex{Cx(0, 2), Cx(0, 4)}, SamplesY(path))
}

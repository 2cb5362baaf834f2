package fourier

import "math"

// Epicycle is a rotating vector: a circle of Radius traversed Rate times per
// period, starting at angle Phase.
type Epicycle struct {
	Radius float64 `json:"radius"`
	Rate   int     `json:"rate"`
	Phase  float64 `json:"phase"`
}

// FromBin derives the epicycle for frequency bin k.
func FromBin(bin Complex, k int) Epicycle {
	return Epicycle{
		Radius: bin.Abs(),
		Rate:   k,
		Phase:  bin.Arg(),
	}
}

// Epicycles maps every bin to its epicycle, in ascending rate order.
func Epicycles(bins []Complex) []Epicycle {
	out := make([]Epicycle, len(bins))
	for k, b := range bins {
		out[k] = FromBin(b, k)
	}
	return out
}

// NonZero drops epicycles whose radius is below eps. The input is not
// modified.
func NonZero(epicycles []Epicycle, eps float64) []Epicycle {
	out := make([]Epicycle, 0, len(epicycles))
	for _, e := range epicycles {
		if !e.IsZero(eps) {
			out = append(out, e)
		}
	}
	return out
}

// Angle returns the angle of the rotating vector at time t.
func (e Epicycle) Angle(t float64) float64 {
	return float64(e.Rate)*2*math.Pi*t + e.Phase
}

// At returns the tip of the vector at time t, relative to its centre.
func (e Epicycle) At(t float64) Point {
	return Polar(e.Radius, e.Angle(t)).Point()
}

// AtOffset returns the tip of the vector at time t when centred on offset.
func (e Epicycle) AtOffset(t float64, offset Point) Point {
	return offset.Add(e.At(t))
}

// IsZero reports whether the radius is below eps (DefaultEpsilon if eps <= 0).
func (e Epicycle) IsZero(eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	return math.Abs(e.Radius) < eps
}

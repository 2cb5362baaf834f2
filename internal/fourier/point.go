package fourier

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the magnitude below which a value is treated as zero.
const DefaultEpsilon = 1e-5

// Point is a position in the drawing plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add returns p+o. The receiver is not modified.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Complex maps x to the real part and y to the imaginary part.
func (p Point) Complex() Complex {
	return Complex{Re: p.X, Im: p.Y}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Complex is a complex number. It doubles as a signal sample and as a
// frequency bin.
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// Cx returns re + im·i.
func Cx(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Polar returns r·e^(iθ).
func Polar(r, theta float64) Complex {
	sin, cos := math.Sincos(theta)
	return Complex{Re: r * cos, Im: r * sin}
}

func (c Complex) String() string {
	return fmt.Sprintf("(%g%+gi)", c.Re, c.Im)
}

func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im}
}

func (c Complex) Sub(o Complex) Complex {
	return Complex{Re: c.Re - o.Re, Im: c.Im - o.Im}
}

// Mult returns the complex product (ac−bd) + (ad+bc)i.
func (c Complex) Mult(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Scale multiplies both parts by s.
func (c Complex) Scale(s float64) Complex {
	return Complex{Re: c.Re * s, Im: c.Im * s}
}

// Abs returns the magnitude of c.
func (c Complex) Abs() float64 {
	return math.Hypot(c.Re, c.Im)
}

// Arg returns the argument of c in (−π, π].
func (c Complex) Arg() float64 {
	a := math.Atan2(c.Im, c.Re)
	if a == -math.Pi {
		return math.Pi
	}
	return a
}

// IsZero reports whether the magnitude of c is below eps.
// A non-positive eps selects DefaultEpsilon.
func (c Complex) IsZero(eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	return c.Abs() < eps
}

// Point maps the real part to x and the imaginary part to y.
func (c Complex) Point() Point {
	return Point{X: c.Re, Y: c.Im}
}

// Samples converts a path to complex samples.
func Samples(path []Point) []Complex {
	out := make([]Complex, len(path))
	for i, p := range path {
		out[i] = p.Complex()
	}
	return out
}

// SamplesX keeps only the x axis of a path, on the real axis.
func SamplesX(path []Point) []Complex {
	out := make([]Complex, len(path))
	for i, p := range path {
		out[i] = Complex{Re: p.X}
	}
	return out
}

// SamplesY keeps only the y axis of a path, on the imaginary axis.
func SamplesY(path []Point) []Complex {
	out := make([]Complex, len(path))
	for i, p := range path {
		out[i] = Complex{Im: p.Y}
	}
	return out
}

package animation

import "github.com/joeyjackson/fourier-series-drawer/internal/fourier"

// Color is an opaque RGB colour; transparency lives in Style.Alpha.
type Color struct {
	R uint8
	G uint8
	B uint8
}

var (
	White = Color{R: 255, G: 255, B: 255}
	Red   = Color{R: 255, G: 0, B: 0}
	Blue  = Color{R: 0, G: 0, B: 255}
)

// Style describes how a primitive is drawn.
type Style struct {
	Color Color
	// Alpha is the opacity in [0, 1].
	Alpha float64
	// Fill paints the inside of circles and dots.
	Fill bool
}

// Canvas is the drawing capability a Session renders through. Coordinates
// are in path space; implementations own the mapping to their surface.
type Canvas interface {
	// Clear starts a new frame.
	Clear()
	// Circle draws a circle around center with diameter d.
	Circle(center fourier.Point, d float64, s Style)
	// Line draws a segment from a to b.
	Line(a, b fourier.Point, s Style)
	// Dot draws a point of diameter d at p.
	Dot(p fourier.Point, d float64, s Style)
}

var (
	ringStyle      = Style{Color: White, Alpha: 100.0 / 255}
	armStyle       = Style{Color: Red, Alpha: 1}
	tipStyle       = Style{Color: White, Alpha: 1, Fill: true}
	connectorStyle = Style{Color: Blue, Alpha: 1}
	trailStyle     = Style{Color: White, Alpha: 1}
)

const tipDiameter = 4

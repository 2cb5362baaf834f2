package visualizer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

// PNG rasterizes frames into an RGBA image with anti-aliased strokes.
type PNG struct {
	img    *image.RGBA
	view   viewport
	raster *vector.Rasterizer
	// StrokeWidth is the line and ring width in pixels.
	StrokeWidth float64
}

var _ animation.Canvas = (*PNG)(nil)

// NewPNG creates a width×height pixel image framing bounds.
func NewPNG(width, height int, bounds pathfit.Rect) *PNG {
	width = max(width, 1)
	height = max(height, 1)
	p := &PNG{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		view:        fixedView(width, height, bounds),
		raster:      vector.NewRasterizer(width, height),
		StrokeWidth: 1.5,
	}
	p.Clear()
	return p
}

// Image returns the current frame.
func (p *PNG) Image() *image.RGBA { return p.img }

func (p *PNG) px(pt fourier.Point) (float64, float64) {
	b := p.img.Bounds()
	return p.view.toDots(pt, b.Dx(), b.Dy())
}

func (p *PNG) Clear() {
	draw.Draw(p.img, p.img.Bounds(), &image.Uniform{C: color.RGBA{A: 255}}, image.Point{}, draw.Src)
}

func (p *PNG) fill(st animation.Style) {
	src := &image.Uniform{C: color.NRGBA{R: st.Color.R, G: st.Color.G, B: st.Color.B, A: uint8(math.Round(clamp01(st.Alpha) * 255))}}
	p.raster.DrawOp = draw.Over
	p.raster.Draw(p.img, p.img.Bounds(), src, image.Point{})
	b := p.img.Bounds()
	p.raster.Reset(b.Dx(), b.Dy())
}

func (p *PNG) Line(a, b fourier.Point, st animation.Style) {
	x0, y0 := p.px(a)
	x1, y1 := p.px(b)
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	hw := p.StrokeWidth / 2
	if length == 0 {
		p.polygon(x0, y0, hw, false)
		p.fill(st)
		return
	}
	nx, ny := -dy/length*hw, dx/length*hw
	p.raster.MoveTo(float32(x0+nx), float32(y0+ny))
	p.raster.LineTo(float32(x1+nx), float32(y1+ny))
	p.raster.LineTo(float32(x1-nx), float32(y1-ny))
	p.raster.LineTo(float32(x0-nx), float32(y0-ny))
	p.raster.ClosePath()
	p.fill(st)
}

func (p *PNG) Circle(center fourier.Point, d float64, st animation.Style) {
	x, y := p.px(center)
	r := d / 2 * p.view.scale()
	if st.Fill {
		p.polygon(x, y, r, false)
		p.fill(st)
		return
	}
	hw := p.StrokeWidth / 2
	p.polygon(x, y, r+hw, false)
	if inner := r - hw; inner > 0 {
		// opposite winding cancels the coverage inside the ring
		p.polygon(x, y, inner, true)
	}
	p.fill(st)
}

func (p *PNG) Dot(pt fourier.Point, d float64, st animation.Style) {
	x, y := p.px(pt)
	p.polygon(x, y, max(d/2, 0.5), false)
	p.fill(st)
}

// polygon adds a closed regular polygon approximating a circle.
func (p *PNG) polygon(cx, cy, r float64, reverse bool) {
	segments := min(max(24, int(math.Pi*r)), 720)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		if reverse {
			theta = -theta
		}
		sin, cos := math.Sincos(theta)
		x, y := float32(cx+r*cos), float32(cy+r*sin)
		if i == 0 {
			p.raster.MoveTo(x, y)
			continue
		}
		p.raster.LineTo(x, y)
	}
	p.raster.ClosePath()
}

// Encode writes the current frame as PNG.
func (p *PNG) Encode(w io.Writer) error {
	if err := png.Encode(w, p.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

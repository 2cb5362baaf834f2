package visualizer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

// exportMargin is the fraction left free on each side of an exported frame.
const exportMargin = 0.05

// fixedView frames bounds in a width×height pixel surface without easing.
func fixedView(width, height int, bounds pathfit.Rect) viewport {
	v := newViewport(60)
	v.aim(bounds, width, height, exportMargin)
	v.snap()
	return v
}

// SVG records frames as an SVG document on a black background. Only the
// primitives drawn since the last Clear end up in the output.
type SVG struct {
	width  int
	height int
	view   viewport
	body   bytes.Buffer
	werr   error
}

var _ animation.Canvas = (*SVG)(nil)

// NewSVG creates a width×height pixel document framing bounds.
func NewSVG(width, height int, bounds pathfit.Rect) *SVG {
	width = max(width, 1)
	height = max(height, 1)
	return &SVG{width: width, height: height, view: fixedView(width, height, bounds)}
}

func (s *SVG) wf(format string, args ...any) {
	if s.werr != nil {
		return
	}
	_, s.werr = fmt.Fprintf(&s.body, format, args...)
}

func (s *SVG) px(p fourier.Point) (float64, float64) {
	return s.view.toDots(p, s.width, s.height)
}

func (s *SVG) Clear() {
	s.body.Reset()
	s.werr = nil
}

func (s *SVG) Circle(center fourier.Point, d float64, st animation.Style) {
	x, y := s.px(center)
	r := d / 2 * s.view.scale()
	if st.Fill {
		s.wf("  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"%s\" fill-opacity=\"%.3f\"/>\n", x, y, r, hexColor(st.Color), st.Alpha)
		return
	}
	s.wf("  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"none\" stroke=\"%s\" stroke-opacity=\"%.3f\"/>\n", x, y, r, hexColor(st.Color), st.Alpha)
}

func (s *SVG) Line(a, b fourier.Point, st animation.Style) {
	x0, y0 := s.px(a)
	x1, y1 := s.px(b)
	s.wf("  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-opacity=\"%.3f\"/>\n", x0, y0, x1, y1, hexColor(st.Color), st.Alpha)
}

// Dot keeps its pixel size regardless of the framing scale.
func (s *SVG) Dot(p fourier.Point, d float64, st animation.Style) {
	x, y := s.px(p)
	s.wf("  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"%s\" fill-opacity=\"%.3f\"/>\n", x, y, d/2, hexColor(st.Color), st.Alpha)
}

// WriteTo writes the complete document for the current frame.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	if s.werr != nil {
		return 0, fmt.Errorf("build svg: %w", s.werr)
	}
	var doc bytes.Buffer
	fmt.Fprintf(&doc, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&doc, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%dpx\" height=\"%dpx\" viewBox=\"0 0 %d %d\">\n", s.width, s.height, s.width, s.height)
	fmt.Fprintf(&doc, "  <rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" fill=\"#000000\"/>\n", s.width, s.height)
	doc.Write(s.body.Bytes())
	doc.WriteString("</svg>\n")
	return doc.WriteTo(w)
}

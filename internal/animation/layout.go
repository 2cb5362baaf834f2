package animation

import (
	"math"

	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

// Arrange returns opts with the anchors filled in so the chains for
// opts.Mode sit beside path instead of on top of it. In ModeSeparate the x
// chain goes above the path and the y chain to its left; in ModeWave the
// wave scrolls out to the right of the chain over twice the path's extent.
func Arrange(opts Options, path []fourier.Point) Options {
	b, err := pathfit.Bounds(path)
	if err != nil {
		return opts
	}
	span := max(b.Width(), b.Height()) / 2
	if span == 0 {
		span = 1
	}
	gap := span / 2

	switch opts.Mode {
	case ModeSeparate:
		opts.CenterX = fourier.Pt(0, b.MinY-gap-span)
		opts.CenterY = fourier.Pt(b.MinX-gap-span, 0)
	case ModeWave:
		opts.Center = fourier.Pt(0, 0)
		opts.WaveOffsetX = span + gap
		opts.WaveStep = 4 * span / float64(len(path))
	default:
		opts.Center = fourier.Pt(0, 0)
	}
	return opts
}

// Bounds returns a rectangle that holds everything Draw can produce: every
// ring at any time, the trail and, in ModeWave, the full wave.
func (s *Session) Bounds() pathfit.Rect {
	r := emptyRect()
	switch s.opts.Mode {
	case ModeSeparate:
		r = r.union(reachRect(s.chains[0], s.opts.CenterX))
		r = r.union(reachRect(s.chains[1], s.opts.CenterY))
		r = r.union(s.pathRect())
	case ModeWave:
		chain := reachRect(s.chains[0], s.opts.Center)
		r = r.union(chain)
		end := s.opts.WaveOffsetX + float64(s.n-1)*s.opts.WaveStep
		r = r.union(rect{MinX: s.opts.WaveOffsetX, MinY: chain.MinY, MaxX: end, MaxY: chain.MaxY})
	default:
		r = r.union(reachRect(s.chains[0], s.opts.Center))
	}
	return pathfit.Rect(r)
}

// pathRect bounds the reconstructed path over one period.
func (s *Session) pathRect() rect {
	r := emptyRect()
	for i := range s.n {
		p := s.Evaluate(float64(i) * s.dt)
		r = r.union(rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y})
	}
	return r
}

type rect pathfit.Rect

func emptyRect() rect {
	return rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

func (r rect) union(o rect) rect {
	return rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// reachRect is the square a chain anchored at offset can never leave.
func reachRect(c *fourier.Chain, offset fourier.Point) rect {
	reach := 0.0
	for _, e := range c.Epicycles() {
		reach += e.Radius
	}
	return rect{MinX: offset.X - reach, MinY: offset.Y - reach, MaxX: offset.X + reach, MaxY: offset.Y + reach}
}

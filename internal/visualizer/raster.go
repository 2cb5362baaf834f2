package visualizer

import (
	"math"

	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

// Dots fainter than this are not plotted at all.
const minVisibleAlpha = 0.02

// raster implements the geometry shared by the terminal canvases. A
// width×height cell area is split into cellW×cellH dots per cell; the
// concrete canvas decides what a plotted dot does to its cell.
type raster struct {
	width  int
	height int
	cellW  int
	cellH  int
	view   viewport
	bounds pathfit.Rect
	margin float64
	plot   func(x, y int, s animation.Style)
}

func newRaster(fps, cellW, cellH int) raster {
	return raster{
		cellW:  cellW,
		cellH:  cellH,
		view:   newViewport(fps),
		margin: 0.04,
	}
}

// resize reports whether the cell dimensions changed.
func (r *raster) resize(width, height int) bool {
	width = max(width, 1)
	height = max(height, 1)
	if width == r.width && height == r.height {
		return false
	}
	r.width, r.height = width, height
	r.aim()
	return true
}

func (r *raster) frame(bounds pathfit.Rect) {
	r.bounds = bounds
	r.aim()
}

func (r *raster) aim() {
	if r.width == 0 || r.bounds == (pathfit.Rect{}) {
		return
	}
	r.view.aim(r.bounds, r.dotCols(), r.dotRows(), r.margin)
}

func (r *raster) dotCols() int { return r.width * r.cellW }
func (r *raster) dotRows() int { return r.height * r.cellH }

func (r *raster) advance() {
	if r.view.ready {
		r.view.step()
	}
}

func (r *raster) toDots(p fourier.Point) (float64, float64) {
	return r.view.toDots(p, r.dotCols(), r.dotRows())
}

func (r *raster) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < r.dotCols() && y < r.dotRows()
}

func (r *raster) put(x, y int, s animation.Style) {
	if !r.inside(x, y) || s.Alpha < minVisibleAlpha {
		return
	}
	r.plot(x, y, s)
}

func (r *raster) line(p0, p1 fourier.Point, s animation.Style) {
	if r.width == 0 {
		return
	}
	x0, y0 := r.toDots(p0)
	x1, y1 := r.toDots(p1)
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, float64(r.dotCols()-1), float64(r.dotRows()-1))
	if !ok {
		return
	}
	r.bresenham(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), s)
}

func (r *raster) bresenham(x0, y0, x1, y1 int, s animation.Style) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		r.put(x0, y0, s)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *raster) circle(center fourier.Point, d float64, s animation.Style) {
	if r.width == 0 {
		return
	}
	cx, cy := r.toDots(center)
	radius := d / 2 * r.view.scale()
	if s.Fill {
		r.disk(cx, cy, radius, s)
		return
	}
	if radius < 0.5 {
		r.put(int(math.Round(cx)), int(math.Round(cy)), s)
		return
	}
	if cx+radius < 0 || cy+radius < 0 || cx-radius > float64(r.dotCols()) || cy-radius > float64(r.dotRows()) {
		return
	}
	segments := max(12, int(2*math.Pi*radius))
	for i := range segments {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		r.put(int(math.Round(cx+radius*cos)), int(math.Round(cy+radius*sin)), s)
	}
}

func (r *raster) dot(p fourier.Point, d float64, s animation.Style) {
	if r.width == 0 {
		return
	}
	x, y := r.toDots(p)
	// markers stay visible at any zoom
	r.disk(x, y, max(d/2*r.view.scale(), 0.5), s)
}

func (r *raster) disk(cx, cy, radius float64, s animation.Style) {
	x0 := int(math.Floor(cx - radius))
	x1 := int(math.Ceil(cx + radius))
	y0 := int(math.Floor(cy - radius))
	y1 := int(math.Ceil(cy + radius))
	plotted := false
	for y := max(y0, 0); y <= min(y1, r.dotRows()-1); y++ {
		for x := max(x0, 0); x <= min(x1, r.dotCols()-1); x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= radius*radius {
				r.put(x, y, s)
				plotted = true
			}
		}
	}
	if !plotted {
		r.put(int(math.Round(cx)), int(math.Round(cy)), s)
	}
}

// clipSegment clips a segment to [0,maxX]×[0,maxY] (Liang–Barsky).
func clipSegment(x0, y0, x1, y1, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

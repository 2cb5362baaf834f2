package visualizer

import (
	"github.com/charmbracelet/harmonica"
	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

// viewport maps path coordinates to dot coordinates. Its centre and zoom
// follow their targets through critically damped springs so a new path or
// terminal size eases in instead of jumping.
type viewport struct {
	spring harmonica.Spring
	pos    [3]float64 // centre x, centre y, scale
	vel    [3]float64
	target [3]float64
	ready  bool
}

func newViewport(fps int) viewport {
	return viewport{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
}

// aim sets the region that should fill a cols×rows dot grid, leaving a
// margin fraction free on each side.
func (v *viewport) aim(bounds pathfit.Rect, cols, rows int, margin float64) {
	w, h := bounds.Width(), bounds.Height()
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	usable := 1 - 2*margin
	scale := min(float64(cols)*usable/w, float64(rows)*usable/h)
	c := bounds.Center()
	v.target = [3]float64{c.X, c.Y, scale}
	if !v.ready {
		v.snap()
	}
}

func (v *viewport) snap() {
	v.pos = v.target
	v.vel = [3]float64{}
	v.ready = true
}

// step moves one frame towards the target.
func (v *viewport) step() {
	for i := range v.pos {
		v.pos[i], v.vel[i] = v.spring.Update(v.pos[i], v.vel[i], v.target[i])
	}
}

func (v *viewport) scale() float64 { return v.pos[2] }

// toDots converts a path point to fractional dot coordinates on a grid of
// cols×rows dots.
func (v *viewport) toDots(p fourier.Point, cols, rows int) (float64, float64) {
	s := v.pos[2]
	x := (p.X-v.pos[0])*s + float64(cols)/2
	y := (p.Y-v.pos[1])*s + float64(rows)/2
	return x, y
}

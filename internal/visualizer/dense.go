package visualizer

import (
	"math"
	"strings"

	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

var densityRamp = []byte(" .:-=+*#%@")

type denseCell struct {
	top    float64
	bottom float64
	color  animation.Color
}

// Dense draws with plain ASCII density characters for terminals without
// Unicode. Each cell holds two stacked dots so the dot grid stays roughly
// square; the character is picked from how strongly both were painted.
type Dense struct {
	raster
	cells   []denseCell
	profile colorProfile
}

func NewDense(fps int) *Dense {
	d := &Dense{
		raster:  newRaster(fps, 1, 2),
		profile: currentColorProfile(),
	}
	d.plot = d.set
	return d
}

func (d *Dense) Name() string { return "dense" }

func (d *Dense) Resize(width, height int) {
	if d.resize(width, height) {
		d.cells = make([]denseCell, d.width*d.height)
	}
}

func (d *Dense) Frame(bounds pathfit.Rect) { d.frame(bounds) }

func (d *Dense) Clear() {
	for i := range d.cells {
		d.cells[i] = denseCell{}
	}
	d.advance()
}

func (d *Dense) Line(p0, p1 fourier.Point, s animation.Style) { d.line(p0, p1, s) }

func (d *Dense) Circle(c fourier.Point, diam float64, s animation.Style) { d.circle(c, diam, s) }

func (d *Dense) Dot(p fourier.Point, diam float64, s animation.Style) { d.dot(p, diam, s) }

func (d *Dense) set(x, y int, s animation.Style) {
	cell := &d.cells[(y/2)*d.width+x]
	half := &cell.top
	if y%2 == 1 {
		half = &cell.bottom
	}
	if s.Alpha > *half {
		*half = s.Alpha
	}
	if s.Alpha >= max(cell.top, cell.bottom) {
		cell.color = s.Color
	}
}

func (d *Dense) View() string {
	var out strings.Builder
	color := newANSIState(d.profile)
	rampLen := len(densityRamp)
	for row := range d.height {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range d.width {
			cell := d.cells[row*d.width+col]
			level := (cell.top + cell.bottom) / 2
			if level <= 0 {
				out.WriteByte(' ')
				continue
			}
			idx := min(int(math.Ceil(level*float64(rampLen-1))), rampLen-1)
			color.set(&out, shade(cell.color, max(cell.top, cell.bottom)))
			out.WriteByte(densityRamp[idx])
		}
		color.reset(&out)
	}
	return out.String()
}
